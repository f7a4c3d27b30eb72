package http

import (
	"net/http"

	"github.com/forknroll/go-boilerplate-base/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	writeJSON(w, r, http.StatusOK, models.VersionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	})
}
