package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/billing"
	"server/internal/domain"
	"server/internal/middleware"
)

type checkoutSessionRequest struct {
	PriceID    string `json:"priceId"`
	UserID     string `json:"userId"`
	UserEmail  string `json:"userEmail"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

// checkoutCORS mirrors the permissive headers the payment endpoint has
// always sent; the hosted checkout page posts here cross-origin.
func checkoutCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// CheckoutSession starts a hosted subscription checkout and records a
// pending intent keyed by the returned session id.
func (a *App) CheckoutSession(w http.ResponseWriter, r *http.Request) {
	checkoutCORS(w)
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		a.json(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req checkoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.checkoutError(w, errors.New("invalid request payload"))
		return
	}
	if a.Checkout == nil {
		err := a.CheckoutErr
		if err == nil {
			err = errors.New("payment provider is not configured")
		}
		a.Logger.Error().Err(err).Msg("checkout unavailable")
		a.checkoutError(w, err)
		return
	}

	sessionID, err := a.Checkout.CreateSession(r.Context(), billing.CheckoutRequest{
		PriceID:    req.PriceID,
		UserID:     req.UserID,
		UserEmail:  req.UserEmail,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("price_id", req.PriceID).Msg("create checkout session failed")
		a.checkoutError(w, err)
		return
	}

	intent := &domain.CheckoutIntent{
		SessionID: sessionID,
		UserID:    req.UserID,
		PriceID:   req.PriceID,
		Tier:      a.tierForPrice(req.PriceID),
		Country:   a.resolveCountry(r),
	}
	if err := a.Checkouts.CreateIntent(r.Context(), intent); err != nil {
		a.Logger.Error().Err(err).Str("session_id", sessionID).Msg("record checkout intent failed")
	}

	a.json(w, http.StatusOK, map[string]string{"sessionId": sessionID})
}

func (a *App) checkoutError(w http.ResponseWriter, err error) {
	a.json(w, http.StatusInternalServerError, map[string]string{
		"error":   "Failed to create checkout session",
		"details": err.Error(),
	})
}

func (a *App) tierForPrice(priceID string) domain.Tier {
	switch priceID {
	case a.PremiumPriceID:
		return domain.TierPremium
	default:
		return domain.TierPro
	}
}

// BillingWebhook receives payment-provider events. The signature check is
// the only authentication; a verified event always gets a 200 regardless of
// type so the provider stops retrying.
func (a *App) BillingWebhook(w http.ResponseWriter, r *http.Request) {
	if a.Webhooks == nil {
		http.Error(w, "webhook endpoint not configured", http.StatusBadRequest)
		return
	}
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	ev, err := a.Webhooks.VerifyEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		a.Logger.Warn().Err(err).Msg("webhook signature verification failed")
		http.Error(w, "Webhook Error: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.Checkouts.RecordEvent(r.Context(), &domain.WebhookEvent{
		ID:        ev.ID,
		Type:      ev.Type,
		SessionID: ev.SessionID,
	}); err != nil {
		a.Logger.Error().Err(err).Str("event_id", ev.ID).Msg("record webhook event failed")
	}

	switch ev.Type {
	case billing.EventCheckoutCompleted:
		a.completeCheckout(r, ev)
	case billing.EventSubscriptionDeleted:
		a.cancelSubscription(r, ev)
	default:
		a.Logger.Info().Str("type", ev.Type).Msg("unhandled webhook event type")
	}

	a.json(w, http.StatusOK, map[string]bool{"received": true})
}

// completeCheckout marks the intent completed and persists the purchased
// tier on the user. The tier comes from the intent written at checkout
// creation, never from the client.
func (a *App) completeCheckout(r *http.Request, ev billing.Event) {
	intent, err := a.Checkouts.GetIntent(r.Context(), ev.SessionID)
	if err != nil {
		a.Logger.Error().Err(err).Str("session_id", ev.SessionID).Msg("checkout intent not found")
		return
	}
	if intent.Status == domain.CheckoutCompleted {
		return
	}
	if err := a.Checkouts.MarkIntent(r.Context(), ev.SessionID, domain.CheckoutCompleted); err != nil {
		a.Logger.Error().Err(err).Str("session_id", ev.SessionID).Msg("mark intent completed failed")
		return
	}
	if err := a.Profiles.SetTier(r.Context(), intent.UserID, intent.Tier); err != nil {
		a.Logger.Error().Err(err).Str("user_id", intent.UserID).Msg("persist tier upgrade failed")
		return
	}
	a.Logger.Info().
		Str("user_id", intent.UserID).
		Str("tier", string(intent.Tier)).
		Str("session_id", ev.SessionID).
		Msg("subscription activated")
}

func (a *App) cancelSubscription(r *http.Request, ev billing.Event) {
	if ev.UserID == "" {
		a.Logger.Warn().Str("session_id", ev.SessionID).Msg("subscription cancelled without user metadata")
		return
	}
	if err := a.Profiles.SetTier(r.Context(), ev.UserID, domain.TierFree); err != nil {
		a.Logger.Error().Err(err).Str("user_id", ev.UserID).Msg("downgrade tier failed")
		return
	}
	a.Logger.Info().Str("user_id", ev.UserID).Msg("subscription cancelled, downgraded to free")
}

// CheckoutIntentStatus lets the success page poll whether the webhook has
// confirmed the purchase instead of trusting its own URL parameters.
func (a *App) CheckoutIntentStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "session_id required")
		return
	}
	intent, err := a.Checkouts.GetIntent(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "checkout session not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load checkout intent failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load checkout session")
		return
	}
	if userID := middleware.UserIDFromContext(r.Context()); userID != "" && userID != intent.UserID {
		a.error(w, http.StatusNotFound, "not_found", "checkout session not found")
		return
	}
	a.json(w, http.StatusOK, map[string]string{
		"session_id": intent.SessionID,
		"status":     string(intent.Status),
		"tier":       string(intent.Tier),
	})
}
