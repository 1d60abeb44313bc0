package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleFounder UserRole = "founder"
	UserRoleAdmin   UserRole = "admin"
)

// Tier enumerates subscription tiers.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// ValidTier reports whether s names a known tier.
func ValidTier(s string) bool {
	switch Tier(s) {
	case TierFree, TierPro, TierPremium:
		return true
	}
	return false
}

// LoginDay records how many times a user signed in on a given calendar day.
// Dates use the YYYY-MM-DD form.
type LoginDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// maxLoginDays caps the retained daily-login history.
const maxLoginDays = 30

// Profile represents an authenticated account. One profile exists per email;
// profiles are created on first sign-in and never deleted (logout only clears
// the current-session pointer).
type Profile struct {
	ID                 string
	Email              string
	Name               string
	Role               UserRole
	Tier               Tier
	QuestionsAnswered  int
	ExperimentsCreated int
	JoinedAt           time.Time
	Summary            string
	SummaryDate        *time.Time
	LastLoginDate      string
	DailyLogins        []LoginDay
	Answers            []string
	PasswordHash       string
	Country            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAdmin reports whether the profile has the admin role.
func (p Profile) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

// RecordLogin bumps the daily-login counter for the given day. Same-day
// logins increment the existing entry; a new day appends one and trims the
// history to the most recent 30 entries.
func (p *Profile) RecordLogin(today string) {
	p.LastLoginDate = today
	for i := range p.DailyLogins {
		if p.DailyLogins[i].Date == today {
			p.DailyLogins[i].Count++
			return
		}
	}
	p.DailyLogins = append(p.DailyLogins, LoginDay{Date: today, Count: 1})
	if len(p.DailyLogins) > maxLoginDays {
		p.DailyLogins = p.DailyLogins[len(p.DailyLogins)-maxLoginDays:]
	}
}
