package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html static/*
var assets embed.FS

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

var pageTemplates = template.Must(
	template.New("").Funcs(templateFuncs).ParseFS(assets, "templates/*.html"),
)

func (h *Handler) landingPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.LandingService.GetLandingPage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	// rendered into a buffer so a failed template never sends a partial page
	var buf bytes.Buffer
	if err = pageTemplates.ExecuteTemplate(&buf, "index.html", page); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrRenderingPage, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func staticFiles() http.HandlerFunc {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(static)))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	}
}
