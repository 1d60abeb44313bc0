package handlers

import (
	"net/http"

	"server/internal/sqlinline"
)

// StatsSummary reports aggregate product counters for the admin console.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	if a.requireAdmin(w, r) == nil {
		return
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var totalUsers, paidUsers, summaries, signups24, summaries24 int64
	if err := row.Scan(&totalUsers, &paidUsers, &summaries, &signups24, &summaries24); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_users":         totalUsers,
		"paid_users":          paidUsers,
		"summaries_generated": summaries,
		"signups_last_24h":    signups24,
		"summaries_last_24h":  summaries24,
	})
}
