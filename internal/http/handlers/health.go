package handlers

import (
	"net/http"
)

// Health is the liveness probe. It touches no dependencies.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "money-engine-api",
	})
}
