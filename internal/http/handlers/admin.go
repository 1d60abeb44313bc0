package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// requireAdmin loads the current profile and writes a 403 unless it carries
// the admin role.
func (a *App) requireAdmin(w http.ResponseWriter, r *http.Request) *domain.Profile {
	p := a.currentProfile(w, r)
	if p == nil {
		return nil
	}
	if !p.IsAdmin() {
		a.error(w, http.StatusForbidden, "forbidden", "admin access required")
		return nil
	}
	return p
}

// AdminUsers lists every profile for the admin console.
func (a *App) AdminUsers(w http.ResponseWriter, r *http.Request) {
	if a.requireAdmin(w, r) == nil {
		return
	}
	profiles, err := a.Profiles.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list profiles failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load users")
		return
	}
	items := make([]profileDTO, 0, len(profiles))
	for i := range profiles {
		items = append(items, toProfileDTO(&profiles[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// AdminInsights lists the coaching insights sent to users.
func (a *App) AdminInsights(w http.ResponseWriter, r *http.Request) {
	if a.requireAdmin(w, r) == nil {
		return
	}
	insights, err := a.Insights.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list insights failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load insights")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": insights})
}

// AdminInsightRead marks an insight as read.
func (a *App) AdminInsightRead(w http.ResponseWriter, r *http.Request) {
	if a.requireAdmin(w, r) == nil {
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	if err := a.Insights.MarkRead(r.Context(), id); err != nil {
		a.Logger.Error().Err(err).Str("insight_id", id).Msg("mark insight read failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update insight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
