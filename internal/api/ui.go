package api

import "net/http"

func (s *PredictionService) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(uiPage)) //nolint:errcheck
}

func (s *PredictionService) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/ui", http.StatusTemporaryRedirect)
}

// Plain form page, no client-side logic; submitting issues a GET against
// /predictions.
const uiPage = `<!doctype html>
<html lang="en">
    <head>
        <meta charset="utf-8" />
        <meta name="viewport" content="width=device-width, initial-scale=1" />
        <title>First time investor customer predictions</title>
        <style>
            body {
                font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
                margin: 2rem;
                background: #FFFFFF;
                color: #003F63;
            }
            .wrap { max-width: 560px; }
            h1 {
                margin-bottom: 0.25rem;
                color: #003F63;
            }
            p { color: #003F63; }
            form {
                margin-top: 1rem;
                padding: 1rem;
                border: 1px solid #003F63;
                border-radius: 8px;
                background: #003F63;
            }
            label {
                display: block;
                margin-top: 0.75rem;
                font-weight: 600;
                color: #FFFFFF;
            }
            select, input {
                width: 100%;
                margin-top: 0.35rem;
                padding: 0.5rem;
                box-sizing: border-box;
                border: 1px solid #999EDC;
                border-radius: 6px;
                color: #FFFFFF;
                background: #999EDC;
            }
            select option { color: #FFFFFF; background: #999EDC; }
            button {
                margin-top: 1rem;
                padding: 0.6rem 0.9rem;
                border: 1px solid #999EDC;
                border-radius: 6px;
                cursor: pointer;
                background: #999EDC;
                color: #FFFFFF;
                font-weight: 600;
            }
            .hint { margin-top: 1rem; font-size: 0.92rem; color: #003F63; }
            em { color: #003F63; font-style: italic; }
            code { color: #003F63; }
        </style>
    </head>
    <body>
        <div class="wrap">
            <h1><em>First time investor</em> customer predictions</h1>
            <p>Select a model, choose how many customers to return, and pick output format.</p>

            <form action="/predictions" method="get">
                <label for="model">Model</label>
                <select id="model" name="model">
                    <option value="logistic_regression">Logistic Regression</option>
                    <option value="xgboost">XGBoost</option>
                    <option value="weibull_tte_rnn">Weibull TTE RNN</option>
                </select>

                <label for="top_x">Top X customers</label>
                <input id="top_x" name="top_x" type="number" min="1" max="100000" value="1000" required />

                <label for="output">Output format</label>
                <select id="output" name="output">
                    <option value="json">JSON</option>
                    <option value="csv">CSV</option>
                </select>

                <button type="submit">Get predictions</button>
            </form>

            <div class="hint">API endpoint: <code>/predictions</code></div>
        </div>
    </body>
</html>
`
