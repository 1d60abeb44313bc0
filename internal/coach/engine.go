package coach

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// Typing-delay hint bounds, in milliseconds. The server never sleeps; the
// client may honor the hint to simulate typing.
const (
	typingDelayBaseMS   = 1500
	typingDelaySpreadMS = 1000
)

// Engine produces bot messages for the coaching conversation. The zero
// Chooser and Now fall back to ambient randomness and wall-clock time.
type Engine struct {
	Choose Chooser
	Now    func() time.Time
}

// NewEngine constructs an Engine with default randomness and clock.
func NewEngine() *Engine {
	return &Engine{Choose: RandomChooser, Now: time.Now}
}

// Exchange is the outcome of one accepted submission.
type Exchange struct {
	UserMessage      domain.Message
	BotMessages      []domain.Message
	SummaryGenerated bool
	TypingDelayMS    int
}

// OpenSession returns the opening messages for a profile: the saved summary
// when one exists, otherwise the tier-appropriate greeting.
func (e *Engine) OpenSession(p *domain.Profile) []domain.Message {
	now := e.now()
	if p.Summary != "" {
		ts := now
		if p.SummaryDate != nil {
			ts = *p.SummaryDate
		}
		return []domain.Message{{
			ID:        "saved-summary",
			Content:   p.Summary,
			Sender:    domain.SenderBot,
			Timestamp: ts,
			Type:      domain.MessageTypeSummary,
		}}
	}
	greeting := PaidGreeting(firstName(p.Name))
	if p.Tier == domain.TierFree {
		greeting = FreeGreeting(firstName(p.Name))
	}
	return []domain.Message{{
		ID:        uuid.NewString(),
		Content:   greeting,
		Sender:    domain.SenderBot,
		Timestamp: now,
		Type:      domain.MessageTypeQuestion,
	}}
}

// Respond handles one submitted answer. The gate check runs first: when the
// quota is spent the submission is rejected with ErrQuotaExhausted and the
// profile is left untouched. On the third accepted free-tier answer the
// closing summary is generated and stored on the profile; the caller is
// responsible for persisting the mutated profile.
func (e *Engine) Respond(p *domain.Profile, content string) (*Exchange, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidMessage
	}
	if !domain.DeriveEntitlements(p).CanAskQuestions {
		return nil, domain.ErrQuotaExhausted
	}

	now := e.now()
	ex := &Exchange{
		UserMessage: domain.Message{
			ID:        uuid.NewString(),
			Content:   content,
			Sender:    domain.SenderUser,
			Timestamp: now,
			Type:      domain.MessageTypeQuestion,
		},
		TypingDelayMS: typingDelayBaseMS + e.choose(typingDelaySpreadMS + 1),
	}

	var reply string
	if p.Tier == domain.TierFree {
		answerIndex := p.QuestionsAnswered
		scripted, ok := ScriptedReply(answerIndex)
		if !ok {
			return nil, domain.ErrQuotaExhausted
		}
		reply = scripted
		p.Answers = append(p.Answers, content)
		p.QuestionsAnswered++
		if p.QuestionsAnswered == len(Script) {
			summary := Summarize(firstName(p.Name), p.Answers)
			summaryAt := now
			p.Summary = summary
			p.SummaryDate = &summaryAt
			ex.SummaryGenerated = true
			ex.BotMessages = append(ex.BotMessages, domain.Message{
				ID:        uuid.NewString(),
				Content:   reply,
				Sender:    domain.SenderBot,
				Timestamp: now,
				Type:      domain.MessageTypeResponse,
			}, domain.Message{
				ID:        uuid.NewString(),
				Content:   summary,
				Sender:    domain.SenderBot,
				Timestamp: now,
				Type:      domain.MessageTypeSummary,
			})
			return ex, nil
		}
	} else {
		reply = PaidReply(e.choose)
		p.QuestionsAnswered++
	}

	ex.BotMessages = append(ex.BotMessages, domain.Message{
		ID:        uuid.NewString(),
		Content:   reply,
		Sender:    domain.SenderBot,
		Timestamp: now,
		Type:      domain.MessageTypeResponse,
	})
	return ex, nil
}

func (e *Engine) choose(n int) int {
	if e.Choose != nil {
		return e.Choose(n)
	}
	return RandomChooser(n)
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
