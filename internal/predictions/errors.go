package predictions

import "fmt"

// NotFoundError indicates the backing file for a model is missing, or present
// but holds no rows. Maps to 404 at the API boundary.
type NotFoundError struct {
	Model ModelID
	File  string
	Empty bool
}

func (e *NotFoundError) Error() string {
	if e.Empty {
		return fmt.Sprintf("prediction file '%s' is empty", e.File)
	}
	return fmt.Sprintf("prediction file not found for model '%s': %s", e.Model, e.File)
}

// ReadError indicates the backing file exists but could not be read or parsed.
// Maps to 500 at the API boundary.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read prediction file '%s': %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ValidationError indicates the table lacks the column its ranking rule
// requires. Maps to 422 at the API boundary.
type ValidationError struct {
	Column string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("expected column '%s' was not found", e.Column)
}
