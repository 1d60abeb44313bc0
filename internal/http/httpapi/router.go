package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// RouterConfig carries the router-level knobs pulled from infra.Config.
type RouterConfig struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

// checkoutPath is exempt from the shared CORS middleware; its handler sets
// its own permissive headers and answers OPTIONS with 200.
const checkoutPath = "/v1/billing/checkout-session"

func NewRouter(app *handlers.App, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins, checkoutPath),
		middleware.Locale(cfg.DefaultLocale, cfg.CountryLookup),
		middleware.Logger(app.Logger),
	)
	if cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Post("/v1/auth/login", app.AuthLogin)

	// The checkout endpoint handles its own CORS and method dispatch; the
	// hosted payment page calls it without a session.
	r.HandleFunc(checkoutPath, app.CheckoutSession)
	r.Post("/v1/billing/webhook", app.BillingWebhook)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/v1/me", app.Me)
		r.Post("/v1/auth/logout", app.AuthLogout)

		r.Route("/v1/coach", func(r chi.Router) {
			r.Get("/session", app.CoachSession)
			r.Post("/messages", app.CoachMessage)
			r.Get("/draft", app.DraftGet)
			r.Put("/draft", app.DraftPut)
			r.Delete("/draft", app.DraftDelete)
		})

		r.Get("/v1/billing/checkout-session/{session_id}", app.CheckoutIntentStatus)

		r.Get("/v1/dashboard", app.Dashboard)
		r.Get("/v1/experiments", app.ExperimentsList)

		r.Route("/v1/resources", func(r chi.Router) {
			r.Get("/", app.ResourcesList)
			r.Get("/bundle", app.ResourceBundle)
			r.Get("/{key}", app.ResourceDownload)
		})

		r.Route("/v1/admin", func(r chi.Router) {
			r.Get("/users", app.AdminUsers)
			r.Get("/insights", app.AdminInsights)
			r.Post("/insights/{id}/read", app.AdminInsightRead)
		})
		r.Get("/v1/stats/summary", app.StatsSummary)
	})

	return r
}
