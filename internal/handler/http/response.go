package http

import (
	"encoding/json"
	"net/http"

	"github.com/forknroll/go-boilerplate-base/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response")
	}
}

// writeError answers with the status mapped from err. The error text is
// not exposed, it may name server-only variables.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, r, status, errorResponse{Error: http.StatusText(status)})
}
