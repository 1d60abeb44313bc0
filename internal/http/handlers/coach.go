package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"server/internal/coach"
	"server/internal/domain"
)

type coachSessionResponse struct {
	Messages     []domain.Message    `json:"messages"`
	Placeholder  string              `json:"placeholder,omitempty"`
	Entitlements domain.Entitlements `json:"entitlements"`
}

type coachMessageRequest struct {
	Content string `json:"content"`
}

type coachMessageResponse struct {
	UserMessage      domain.Message      `json:"user_message"`
	BotMessages      []domain.Message    `json:"bot_messages"`
	TypingDelayMS    int                 `json:"typing_delay_ms"`
	SummaryGenerated bool                `json:"summary_generated"`
	Entitlements     domain.Entitlements `json:"entitlements"`
}

// CoachSession opens the conversation: the saved summary when one exists,
// otherwise the tier greeting with the first prompt.
func (a *App) CoachSession(w http.ResponseWriter, r *http.Request) {
	p := a.currentProfile(w, r)
	if p == nil {
		return
	}
	resp := coachSessionResponse{
		Messages:     a.Engine.OpenSession(p),
		Entitlements: domain.DeriveEntitlements(p),
	}
	if p.Summary == "" {
		resp.Placeholder = coach.PlaceholderFor(p.QuestionsAnswered, p.Tier == domain.TierFree)
	}
	a.json(w, http.StatusOK, resp)
}

// CoachMessage accepts one user answer and returns the bot reply. The gate
// check runs before any mutation; an exhausted quota rejects the submission
// outright.
func (a *App) CoachMessage(w http.ResponseWriter, r *http.Request) {
	p := a.currentProfile(w, r)
	if p == nil {
		return
	}
	var req coachMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	ex, err := a.Engine.Respond(p, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMessage):
			a.error(w, http.StatusBadRequest, "bad_request", "content required")
		case errors.Is(err, domain.ErrQuotaExhausted):
			a.error(w, http.StatusForbidden, "quota_exhausted", "question limit reached, upgrade to continue")
		default:
			a.Logger.Error().Err(err).Msg("coach respond failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to process message")
		}
		return
	}

	if err := a.Profiles.Update(r.Context(), p); err != nil {
		a.Logger.Error().Err(err).Str("user_id", p.ID).Msg("persist profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to persist progress")
		return
	}

	if ex.SummaryGenerated {
		if a.Drafts != nil {
			if err := a.Drafts.Delete(r.Context(), p.ID); err != nil {
				a.Logger.Warn().Err(err).Msg("clear draft failed")
			}
		}
		a.dispatchSummaryEmails(p)
	}

	a.json(w, http.StatusOK, coachMessageResponse{
		UserMessage:      ex.UserMessage,
		BotMessages:      ex.BotMessages,
		TypingDelayMS:    ex.TypingDelayMS,
		SummaryGenerated: ex.SummaryGenerated,
		Entitlements:     domain.DeriveEntitlements(p),
	})
}

// dispatchSummaryEmails sends the summary to the user and the admin inbox.
// Delivery failures are logged and never affect the response.
func (a *App) dispatchSummaryEmails(p *domain.Profile) {
	if a.Notifier == nil {
		return
	}
	email, name, summary := p.Email, p.Name, p.Summary
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.Notifier.SendSummary(ctx, email, name, summary); err != nil {
			a.Logger.Error().Err(err).Str("to", email).Msg("summary email failed")
		}
		if err := a.Notifier.NotifyAdmin(ctx, email, name, summary); err != nil {
			a.Logger.Error().Err(err).Msg("admin summary email failed")
		}
	}()
}

type draftRequest struct {
	Content string `json:"content"`
}

// DraftGet returns the saved chat draft for the current user.
func (a *App) DraftGet(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	content, err := a.Drafts.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "no draft saved")
			return
		}
		a.Logger.Error().Err(err).Msg("load draft failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load draft")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"content": content})
}

// DraftPut stores the chat draft, resetting its TTL.
func (a *App) DraftPut(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Drafts.Put(r.Context(), userID, req.Content, a.DraftTTL); err != nil {
		a.Logger.Error().Err(err).Msg("save draft failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save draft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DraftDelete discards the chat draft.
func (a *App) DraftDelete(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if err := a.Drafts.Delete(r.Context(), userID); err != nil {
		a.Logger.Error().Err(err).Msg("delete draft failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete draft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
