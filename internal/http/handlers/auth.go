package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
	"server/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  profileDTO `json:"user"`
}

type profileDTO struct {
	ID                 string              `json:"id"`
	Email              string              `json:"email"`
	Name               string              `json:"name"`
	Role               string              `json:"role"`
	Tier               string              `json:"tier"`
	QuestionsAnswered  int                 `json:"questions_answered"`
	ExperimentsCreated int                 `json:"experiments_created"`
	JoinedAt           time.Time           `json:"joined_at"`
	Summary            string              `json:"summary,omitempty"`
	SummaryDate        *time.Time          `json:"summary_date,omitempty"`
	LastLoginDate      string              `json:"last_login_date"`
	DailyLogins        []domain.LoginDay   `json:"daily_logins"`
	Country            string              `json:"country,omitempty"`
	Entitlements       domain.Entitlements `json:"entitlements"`
}

func toProfileDTO(p *domain.Profile) profileDTO {
	logins := p.DailyLogins
	if logins == nil {
		logins = []domain.LoginDay{}
	}
	return profileDTO{
		ID:                 p.ID,
		Email:              p.Email,
		Name:               p.Name,
		Role:               string(p.Role),
		Tier:               string(p.Tier),
		QuestionsAnswered:  p.QuestionsAnswered,
		ExperimentsCreated: p.ExperimentsCreated,
		JoinedAt:           p.JoinedAt,
		Summary:            p.Summary,
		SummaryDate:        p.SummaryDate,
		LastLoginDate:      p.LastLoginDate,
		DailyLogins:        logins,
		Country:            p.Country,
		Entitlements:       domain.DeriveEntitlements(p),
	}
}

// AuthLogin signs a user in, creating the profile on first contact. One
// profile exists per email; repeat logins verify the password and bump the
// daily-login counter.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		a.error(w, http.StatusBadRequest, "bad_request", "valid email required")
		return
	}
	if req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "password required")
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	p, err := a.Profiles.GetByEmail(r.Context(), email)
	switch {
	case err == nil:
		if err := verifyLogin(p, req.Password); errors.Is(err, domain.ErrInvalidCredentials) {
			a.error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		p.RecordLogin(today)
		if err := a.Profiles.Update(r.Context(), p); err != nil {
			a.Logger.Error().Err(err).Str("email", email).Msg("record login failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to persist login")
			return
		}
	case errors.Is(err, domain.ErrNotFound):
		p, err = a.createProfile(r, email, req.Password, req.Name, today)
		if err != nil {
			a.Logger.Error().Err(err).Str("email", email).Msg("create profile failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to create profile")
			return
		}
	default:
		a.Logger.Error().Err(err).Str("email", email).Msg("load profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	token, err := middleware.SignSession(a.JWTSecret, p.ID, string(p.Tier), string(p.Role))
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign session failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: token, User: toProfileDTO(p)})
}

// verifyLogin checks the submitted password against the stored hash.
func verifyLogin(p *domain.Profile, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (a *App) createProfile(r *http.Request, email, password, name, today string) (*domain.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = nameFromEmail(email)
	}

	role := domain.UserRoleFounder
	tier := domain.TierFree
	if strings.EqualFold(email, a.AdminEmail) {
		role = domain.UserRoleAdmin
		tier = domain.TierPremium
	}

	p := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		Tier:         tier,
		JoinedAt:     time.Now().UTC(),
		PasswordHash: string(hash),
		Country:      a.resolveCountry(r),
	}
	p.RecordLogin(today)
	if err := a.Profiles.Create(r.Context(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// resolveCountry attributes the request to a country for the admin view.
func (a *App) resolveCountry(r *http.Request) string {
	lookup := middleware.CountryLookup(nil)
	if a.Geo != nil {
		lookup = a.Geo.CountryCode
	}
	return middleware.ResolveCountry(r, lookup)
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.ReplaceAll(local, ".", " ")
	if local == "" {
		return "there"
	}
	return cases.Title(language.English).String(local)
}

// Me returns the current profile with derived entitlements.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	p := a.currentProfile(w, r)
	if p == nil {
		return
	}
	a.json(w, http.StatusOK, toProfileDTO(p))
}

// AuthLogout ends the session. Tokens are stateless so there is nothing to
// revoke server-side; the profile row is never touched.
func (a *App) AuthLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
