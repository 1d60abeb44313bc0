package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"server/internal/coach"
	"server/internal/domain"
	"server/internal/middleware"
)

func coachApp(profiles *fakeProfiles) *App {
	return &App{
		Logger:   testLogger(),
		Profiles: profiles,
		Drafts:   newFakeDrafts(),
		Engine: &coach.Engine{
			Choose: func(n int) int { return 0 },
			Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		},
		JWTSecret: "test-secret",
		DraftTTL:  time.Hour,
	}
}

func freeFounder(answered int, answers ...string) *domain.Profile {
	return &domain.Profile{
		ID:                "user-1",
		Email:             "founder@example.com",
		Name:              "Jo Founder",
		Role:              domain.UserRoleFounder,
		Tier:              domain.TierFree,
		QuestionsAnswered: answered,
		Answers:           answers,
	}
}

func postMessage(t *testing.T, app *App, content string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/coach/messages", strings.NewReader(`{"content":`+jsonString(content)+`}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()
	app.CoachMessage(rr, req)
	return rr
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCoachMessage_FirstScriptedReply(t *testing.T) {
	profiles := newFakeProfiles(freeFounder(0))
	app := coachApp(profiles)

	rr := postMessage(t, app, "We help small agencies reconcile invoices without spreadsheets.")
	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d (%s)", rr.Code, rr.Body.String())
	}
	var resp coachMessageResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.BotMessages) != 1 {
		t.Fatalf("expected 1 bot message, got %d", len(resp.BotMessages))
	}
	want := coach.Script[0].FollowUp + "\n\n" + coach.Script[1].Question
	if resp.BotMessages[0].Content != want {
		t.Fatalf("bot reply mismatch:\ngot  %q\nwant %q", resp.BotMessages[0].Content, want)
	}
	if resp.TypingDelayMS < 1500 || resp.TypingDelayMS > 2500 {
		t.Fatalf("typing delay out of range: %d", resp.TypingDelayMS)
	}
	if stored := profiles.stored("user-1"); stored.QuestionsAnswered != 1 {
		t.Fatalf("answer not persisted: %d", stored.QuestionsAnswered)
	}
}

func TestCoachMessage_QuotaExhaustedIsNoOp(t *testing.T) {
	profiles := newFakeProfiles(freeFounder(3, "a", "b", "c"))
	app := coachApp(profiles)

	rr := postMessage(t, app, "one more question please")
	if rr.Code != 403 {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "quota_exhausted" {
		t.Fatalf("unexpected error code: %q", resp["error"])
	}
	if profiles.updates != 0 {
		t.Fatalf("rejected submission must not persist anything")
	}
}

func TestCoachMessage_ThirdAnswerGeneratesSummary(t *testing.T) {
	profiles := newFakeProfiles(freeFounder(2,
		"Agencies waste hours reconciling invoices by hand in spreadsheets.",
		"Most competitors are too expensive for small agency teams today.",
	))
	app := coachApp(profiles)
	notifier := newFakeNotifier()
	app.Notifier = notifier

	rr := postMessage(t, app, "A monthly subscription priced for small agency teams.")
	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d (%s)", rr.Code, rr.Body.String())
	}
	var resp coachMessageResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.SummaryGenerated {
		t.Fatalf("expected summary on the third answer")
	}
	if len(resp.BotMessages) != 2 {
		t.Fatalf("expected follow-up and summary messages, got %d", len(resp.BotMessages))
	}
	if resp.BotMessages[1].Type != domain.MessageTypeSummary {
		t.Fatalf("second message should be the summary, got %s", resp.BotMessages[1].Type)
	}
	if resp.Entitlements.CanAskQuestions {
		t.Fatalf("quota should be spent after the third answer")
	}

	stored := profiles.stored("user-1")
	if stored.Summary == "" || stored.SummaryDate == nil {
		t.Fatalf("summary not persisted on the profile")
	}

	// Both the user copy and the admin notification go out.
	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case sent := <-notifier.done:
			got[sent.kind] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for summary emails, got %v", got)
		}
	}
	if !got["summary"] || !got["admin"] {
		t.Fatalf("expected summary and admin emails, got %v", got)
	}
}

func TestCoachMessage_EmptyContent(t *testing.T) {
	app := coachApp(newFakeProfiles(freeFounder(0)))
	rr := postMessage(t, app, "   ")
	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCoachSession_SavedSummaryReplayed(t *testing.T) {
	summaryAt := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	p := freeFounder(3, "a", "b", "c")
	p.Summary = "Here is your growth plan."
	p.SummaryDate = &summaryAt
	app := coachApp(newFakeProfiles(p))

	req := httptest.NewRequest("GET", "/v1/coach/session", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()
	app.CoachSession(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var resp coachSessionResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "saved-summary" {
		t.Fatalf("expected the saved summary message, got %+v", resp.Messages)
	}
	if !resp.Messages[0].Timestamp.Equal(summaryAt) {
		t.Fatalf("summary should keep its original timestamp")
	}
	if resp.Placeholder != "" {
		t.Fatalf("no placeholder once the session is closed")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	app := coachApp(newFakeProfiles(freeFounder(0)))

	put := httptest.NewRequest("PUT", "/v1/coach/draft", strings.NewReader(`{"content":"half an answer"}`))
	put = put.WithContext(middleware.ContextWithUserID(put.Context(), "user-1"))
	rr := httptest.NewRecorder()
	app.DraftPut(rr, put)
	if rr.Code != 204 {
		t.Fatalf("put draft: expected 204, got %d", rr.Code)
	}

	get := httptest.NewRequest("GET", "/v1/coach/draft", nil)
	get = get.WithContext(middleware.ContextWithUserID(get.Context(), "user-1"))
	rr = httptest.NewRecorder()
	app.DraftGet(rr, get)
	if rr.Code != 200 {
		t.Fatalf("get draft: expected 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["content"] != "half an answer" {
		t.Fatalf("unexpected draft content: %q", resp["content"])
	}

	del := httptest.NewRequest("DELETE", "/v1/coach/draft", nil)
	del = del.WithContext(middleware.ContextWithUserID(del.Context(), "user-1"))
	rr = httptest.NewRecorder()
	app.DraftDelete(rr, del)
	if rr.Code != 204 {
		t.Fatalf("delete draft: expected 204, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	app.DraftGet(rr, get)
	if rr.Code != 404 {
		t.Fatalf("deleted draft should 404, got %d", rr.Code)
	}
}
