package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"predictions-backend/internal/predictions"
)

// csvAttachment renders a selected table as a downloadable CSV file.
type csvAttachment struct {
	filename string
	table    *predictions.Table
}

var _ RawResponse = (*csvAttachment)(nil)

func (c *csvAttachment) WriteResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", c.filename))
	w.WriteHeader(http.StatusOK)

	if err := c.table.WriteCSV(w); err != nil {
		// Headers are already out, nothing left to do but log.
		slog.Error("error writing csv response", "filename", c.filename, "error", err)
	}
}
