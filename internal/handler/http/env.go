package http

import (
	"net/http"

	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/models"
)

// getPublicEnv exposes the client-side view of the environment. Server
// variables never reach this response.
func (h *Handler) getPublicEnv(w http.ResponseWriter, r *http.Request) {
	public, err := h.services.LandingService.PublicEnv(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.EnvResponse{
		Side:      env.ClientSide.String(),
		Variables: public,
	})
}
