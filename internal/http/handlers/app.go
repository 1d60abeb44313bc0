package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"server/internal/billing"
	"server/internal/coach"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/notify"
	"server/internal/resources"
)

// App holds every dependency the HTTP handlers need.
type App struct {
	SQL    infra.SQLExecutor
	Logger zerolog.Logger

	Profiles    domain.ProfileRepository
	Checkouts   domain.CheckoutRepository
	Drafts      domain.DraftStore
	Experiments domain.ExperimentRepository
	Insights    domain.InsightRepository

	Engine   *coach.Engine
	Checkout billing.CheckoutCreator
	Webhooks billing.WebhookVerifier
	// CheckoutErr carries the gateway construction failure so checkout
	// requests can report the misconfiguration instead of panicking.
	CheckoutErr error

	Notifier  notify.Notifier
	Geo       geoip.CountryResolver
	Resources *resources.Service

	JWTSecret      string
	AdminEmail     string
	ProPriceID     string
	PremiumPriceID string
	DraftTTL       time.Duration
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, msg string) {
	a.json(w, code, map[string]string{"error": codeStr, "message": msg})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// currentProfile loads the authenticated profile or writes the appropriate
// error response and returns nil.
func (a *App) currentProfile(w http.ResponseWriter, r *http.Request) *domain.Profile {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return nil
	}
	p, err := a.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return nil
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return nil
	}
	return p
}
