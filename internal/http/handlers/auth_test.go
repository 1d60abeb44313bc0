package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
	"server/internal/middleware"
)

func loginApp(profiles *fakeProfiles) *App {
	return &App{
		Logger:     testLogger(),
		Profiles:   profiles,
		JWTSecret:  "test-secret",
		AdminEmail: "tash@tashjefferies.com",
	}
}

func doLogin(t *testing.T, app *App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.AuthLogin(rr, req)
	return rr
}

func TestAuthLogin_FirstSignInCreatesProfile(t *testing.T) {
	profiles := newFakeProfiles()
	app := loginApp(profiles)

	rr := doLogin(t, app, `{"email":"Founder@Example.com","password":"hunter22","name":"Jo Founder"}`)
	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d, want 200 (%s)", rr.Code, rr.Body.String())
	}

	var resp loginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a session token")
	}
	if resp.User.Email != "founder@example.com" {
		t.Fatalf("email not normalized: %q", resp.User.Email)
	}
	if resp.User.Role != "founder" || resp.User.Tier != "free" {
		t.Fatalf("unexpected role/tier: %s/%s", resp.User.Role, resp.User.Tier)
	}
	if resp.User.QuestionsAnswered != 0 {
		t.Fatalf("expected zero questions answered, got %d", resp.User.QuestionsAnswered)
	}
	today := time.Now().UTC().Format("2006-01-02")
	if len(resp.User.DailyLogins) != 1 || resp.User.DailyLogins[0].Date != today || resp.User.DailyLogins[0].Count != 1 {
		t.Fatalf("unexpected daily logins: %+v", resp.User.DailyLogins)
	}

	claims, err := middleware.VerifySession(app.JWTSecret, resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != resp.User.ID {
		t.Fatalf("token subject %q, want %q", claims.Subject, resp.User.ID)
	}
}

func TestAuthLogin_AdminAllowlist(t *testing.T) {
	app := loginApp(newFakeProfiles())

	rr := doLogin(t, app, `{"email":"tash@tashjefferies.com","password":"s3cret"}`)
	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var resp loginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != "admin" || resp.User.Tier != "premium" {
		t.Fatalf("admin allowlist not applied: role=%s tier=%s", resp.User.Role, resp.User.Tier)
	}
}

func TestAuthLogin_WrongPasswordRejected(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	profiles := newFakeProfiles(&domain.Profile{
		ID:           "user-1",
		Email:        "founder@example.com",
		Name:         "Jo",
		Role:         domain.UserRoleFounder,
		Tier:         domain.TierFree,
		PasswordHash: string(hash),
	})
	app := loginApp(profiles)

	rr := doLogin(t, app, `{"email":"founder@example.com","password":"wrong"}`)
	if rr.Code != 401 {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if profiles.updates != 0 {
		t.Fatalf("failed login must not touch the profile")
	}
}

func TestAuthLogin_SameDayLoginIncrements(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	profiles := newFakeProfiles(&domain.Profile{
		ID:            "user-1",
		Email:         "founder@example.com",
		Name:          "Jo",
		Role:          domain.UserRoleFounder,
		Tier:          domain.TierFree,
		PasswordHash:  string(hash),
		LastLoginDate: today,
		DailyLogins:   []domain.LoginDay{{Date: today, Count: 1}},
	})
	app := loginApp(profiles)

	rr := doLogin(t, app, `{"email":"founder@example.com","password":"hunter22"}`)
	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	stored := profiles.stored("user-1")
	if len(stored.DailyLogins) != 1 || stored.DailyLogins[0].Count != 2 {
		t.Fatalf("same-day login should increment: %+v", stored.DailyLogins)
	}
}

func TestAuthLogin_BadPayloads(t *testing.T) {
	app := loginApp(newFakeProfiles())
	for _, body := range []string{`{}`, `{"email":"not-an-email","password":"x"}`, `{"email":"a@b.co"}`} {
		if rr := doLogin(t, app, body); rr.Code != 400 {
			t.Fatalf("body %s: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestMe_ReturnsEntitlements(t *testing.T) {
	profiles := newFakeProfiles(&domain.Profile{
		ID:                "user-1",
		Email:             "founder@example.com",
		Name:              "Jo",
		Role:              domain.UserRoleFounder,
		Tier:              domain.TierFree,
		QuestionsAnswered: 3,
	})
	app := loginApp(profiles)

	req := httptest.NewRequest("GET", "/v1/me", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()
	app.Me(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var dto profileDTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Entitlements.CanAskQuestions {
		t.Fatalf("exhausted free account should not ask questions")
	}
	if !dto.Entitlements.DashboardEnabled {
		t.Fatalf("dashboard should unlock after the scripted session")
	}
}

func TestMe_MissingContext(t *testing.T) {
	app := loginApp(newFakeProfiles())
	req := httptest.NewRequest("GET", "/v1/me", nil)
	rr := httptest.NewRecorder()
	app.Me(rr, req)
	if rr.Code != 401 {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
