package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ResourcesList returns the downloadable template catalog.
func (a *App) ResourcesList(w http.ResponseWriter, r *http.Request) {
	if a.currentProfile(w, r) == nil {
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": a.Resources.List()})
}

// ResourceDownload streams a single template document.
func (a *App) ResourceDownload(w http.ResponseWriter, r *http.Request) {
	if a.currentProfile(w, r) == nil {
		return
	}
	key := chi.URLParam(r, "key")
	t, data, err := a.Resources.Get(r.Context(), key)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "template not found")
		return
	}
	w.Header().Set("Content-Type", t.MIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+t.Key+`"`)
	_, _ = w.Write(data)
}

// ResourceBundle streams every template as one zip archive.
func (a *App) ResourceBundle(w http.ResponseWriter, r *http.Request) {
	if a.currentProfile(w, r) == nil {
		return
	}
	data, err := a.Resources.Bundle(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("bundle resources failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build bundle")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="startup-resources.zip"`)
	_, _ = w.Write(data)
}
