package http

import (
	"net/http"

	"github.com/forknroll/go-boilerplate-base/models"
)

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.HealthResponse{Status: "ok"})
}
