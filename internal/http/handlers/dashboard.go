package handlers

import (
	"errors"
	"net/http"
	"time"

	"server/internal/domain"
)

type dashboardResponse struct {
	QuestionsAnswered  int                 `json:"questions_answered"`
	ExperimentsCreated int                 `json:"experiments_created"`
	LoginStreak        int                 `json:"login_streak"`
	DailyLogins        []domain.LoginDay   `json:"daily_logins"`
	HasSummary         bool                `json:"has_summary"`
	SummaryDate        *time.Time          `json:"summary_date,omitempty"`
	Entitlements       domain.Entitlements `json:"entitlements"`
}

// Dashboard returns the KPI view. Free accounts see it only after finishing
// the scripted session.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	p := a.currentProfile(w, r)
	if p == nil {
		return
	}
	ent := domain.DeriveEntitlements(p)
	if err := ent.RequireDashboard(); errors.Is(err, domain.ErrForbiddenSurface) {
		a.error(w, http.StatusForbidden, "upgrade_required", "complete your coaching session or upgrade to unlock the dashboard")
		return
	}
	logins := p.DailyLogins
	if logins == nil {
		logins = []domain.LoginDay{}
	}
	a.json(w, http.StatusOK, dashboardResponse{
		QuestionsAnswered:  p.QuestionsAnswered,
		ExperimentsCreated: p.ExperimentsCreated,
		LoginStreak:        loginStreak(logins, time.Now().UTC()),
		DailyLogins:        logins,
		HasSummary:         p.Summary != "",
		SummaryDate:        p.SummaryDate,
		Entitlements:       ent,
	})
}

// loginStreak counts consecutive calendar days with a login, ending today
// or yesterday.
func loginStreak(logins []domain.LoginDay, now time.Time) int {
	seen := make(map[string]bool, len(logins))
	for _, l := range logins {
		seen[l.Date] = true
	}
	day := now
	if !seen[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for seen[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ExperimentsList returns the user's validation experiments, behind the
// same gate as the dashboard.
func (a *App) ExperimentsList(w http.ResponseWriter, r *http.Request) {
	p := a.currentProfile(w, r)
	if p == nil {
		return
	}
	if err := domain.DeriveEntitlements(p).RequireExperiments(); errors.Is(err, domain.ErrForbiddenSurface) {
		a.error(w, http.StatusForbidden, "upgrade_required", "complete your coaching session or upgrade to unlock experiments")
		return
	}
	experiments, err := a.Experiments.ListByUser(r.Context(), p.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list experiments failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load experiments")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": experiments})
}
