package coach

import (
	"errors"
	"strings"
	"testing"
	"time"

	"server/internal/domain"
)

func testEngine() *Engine {
	return &Engine{
		Choose: func(n int) int { return 0 },
		Now:    func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
	}
}

func freeProfile() *domain.Profile {
	return &domain.Profile{ID: "u-1", Name: "Tash Jefferies", Tier: domain.TierFree}
}

func TestScriptedReply(t *testing.T) {
	for i := 0; i < 2; i++ {
		got, ok := ScriptedReply(i)
		if !ok {
			t.Fatalf("index %d rejected", i)
		}
		want := Script[i].FollowUp + "\n\n" + Script[i+1].Question
		if got != want {
			t.Fatalf("index %d reply mismatch", i)
		}
	}
	got, ok := ScriptedReply(2)
	if !ok || got != Script[2].FollowUp+ClosingRemark {
		t.Fatal("final reply must be follow-up plus closing remark")
	}
	if _, ok := ScriptedReply(3); ok {
		t.Fatal("out-of-script index must be rejected")
	}
}

func TestEngineRespond_FreeScriptWalk(t *testing.T) {
	e := testEngine()
	p := freeProfile()

	ex, err := e.Respond(p, goodProblem)
	if err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if p.QuestionsAnswered != 1 || len(p.Answers) != 1 {
		t.Fatalf("counters after first answer: answered=%d answers=%d", p.QuestionsAnswered, len(p.Answers))
	}
	if len(ex.BotMessages) != 1 || ex.SummaryGenerated {
		t.Fatalf("unexpected exchange shape: %+v", ex)
	}
	if ex.BotMessages[0].Content != Script[0].FollowUp+"\n\n"+Script[1].Question {
		t.Fatal("first reply should chain follow-up and second prompt")
	}
	if ex.TypingDelayMS < 1500 || ex.TypingDelayMS > 2500 {
		t.Fatalf("typing delay out of range: %d", ex.TypingDelayMS)
	}

	if _, err := e.Respond(p, goodCompetition); err != nil {
		t.Fatalf("second answer: %v", err)
	}

	ex, err = e.Respond(p, goodBusiness)
	if err != nil {
		t.Fatalf("third answer: %v", err)
	}
	if !ex.SummaryGenerated {
		t.Fatal("third free answer must generate the summary")
	}
	if len(ex.BotMessages) != 2 || ex.BotMessages[1].Type != domain.MessageTypeSummary {
		t.Fatalf("expected closing reply plus summary, got %d messages", len(ex.BotMessages))
	}
	if p.Summary == "" || p.SummaryDate == nil || p.QuestionsAnswered != 3 {
		t.Fatalf("profile not updated after summary: answered=%d", p.QuestionsAnswered)
	}
	if p.Summary != ex.BotMessages[1].Content {
		t.Fatal("persisted summary must match the emitted message")
	}
}

func TestEngineRespond_QuotaGate(t *testing.T) {
	e := testEngine()
	p := freeProfile()
	p.QuestionsAnswered = 3

	_, err := e.Respond(p, "one more question please, I have so much left to ask")
	if !errors.Is(err, domain.ErrQuotaExhausted) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if p.QuestionsAnswered != 3 || len(p.Answers) != 0 {
		t.Fatal("rejected submission must not mutate the profile")
	}
}

func TestEngineRespond_PaidReplies(t *testing.T) {
	e := testEngine()
	p := &domain.Profile{ID: "u-2", Name: "Ada", Tier: domain.TierPro}

	ex, err := e.Respond(p, "How should I think about churn for my B2B product?")
	if err != nil {
		t.Fatalf("paid answer: %v", err)
	}
	if ex.BotMessages[0].Content != paidReplies[0] {
		t.Fatal("chooser index 0 must select the first canned reply")
	}
	if ex.SummaryGenerated {
		t.Fatal("paid tiers never get a scripted summary")
	}

	seeded := SeededChooser(42)
	first := paidReplies[seeded(len(paidReplies))]
	again := SeededChooser(42)
	if first != paidReplies[again(len(paidReplies))] {
		t.Fatal("seeded chooser must be reproducible")
	}
}

func TestEngineOpenSession(t *testing.T) {
	e := testEngine()

	msgs := e.OpenSession(freeProfile())
	if len(msgs) != 1 || !strings.Contains(msgs[0].Content, Script[0].Question) {
		t.Fatal("free session must open with the first scripted prompt")
	}
	if !strings.HasPrefix(msgs[0].Content, "Hi Tash!") {
		t.Fatalf("greeting should address the first name: %.30s", msgs[0].Content)
	}

	summaryAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	saved := &domain.Profile{Name: "Tash", Tier: domain.TierFree, QuestionsAnswered: 3,
		Summary: "saved analysis", SummaryDate: &summaryAt}
	msgs = e.OpenSession(saved)
	if len(msgs) != 1 || msgs[0].Type != domain.MessageTypeSummary || msgs[0].Content != "saved analysis" {
		t.Fatal("saved summary must be reconstructed on session open")
	}
	if !msgs[0].Timestamp.Equal(summaryAt) {
		t.Fatal("reconstructed summary keeps its original timestamp")
	}
}

func TestEngineRespond_EmptyInput(t *testing.T) {
	e := testEngine()
	p := freeProfile()
	if _, err := e.Respond(p, "   "); !errors.Is(err, domain.ErrInvalidMessage) {
		t.Fatalf("expected invalid message error, got %v", err)
	}
	if p.QuestionsAnswered != 0 {
		t.Fatal("empty input must not consume quota")
	}
}
