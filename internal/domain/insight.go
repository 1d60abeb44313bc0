package domain

import "time"

// AdminInsight is a coaching note left by an admin for a specific user.
// Demo data only in the current product.
type AdminInsight struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
