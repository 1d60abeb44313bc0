package domain

// freeQuestionLimit is the number of scripted questions a free account may
// answer. There is no time-based reset for any tier; the "questions reset
// daily" copy shown to paid users is informational only.
const (
	freeQuestionLimit = 3
	proQuestionLimit  = 50
)

// FreePhase enumerates the derived sub-state of a free-tier account.
type FreePhase string

const (
	FreePhaseOnboarding FreePhase = "onboarding"
	FreePhaseAnswering  FreePhase = "answering"
	FreePhaseExhausted  FreePhase = "exhausted"
)

// Entitlements captures which application surfaces a profile may use. It is
// derived from the profile on every request and never stored.
type Entitlements struct {
	Tier               Tier      `json:"tier"`
	QuestionLimit      int       `json:"question_limit"` // 0 means unbounded
	QuestionsRemaining int       `json:"questions_remaining"`
	CanAskQuestions    bool      `json:"can_ask_questions"`
	DashboardEnabled   bool      `json:"dashboard_enabled"`
	ExperimentsEnabled bool      `json:"experiments_enabled"`
	FreePhase          FreePhase `json:"free_phase,omitempty"`
}

// RequireDashboard returns ErrForbiddenSurface while the dashboard is still
// locked for this profile.
func (e Entitlements) RequireDashboard() error {
	if !e.DashboardEnabled {
		return ErrForbiddenSurface
	}
	return nil
}

// RequireExperiments returns ErrForbiddenSurface while the experiments
// surface is still locked for this profile.
func (e Entitlements) RequireExperiments() error {
	if !e.ExperimentsEnabled {
		return ErrForbiddenSurface
	}
	return nil
}

// QuestionLimitFor returns the quota for a tier. Premium is unbounded,
// reported as 0.
func QuestionLimitFor(tier Tier) int {
	switch tier {
	case TierFree:
		return freeQuestionLimit
	case TierPro:
		return proQuestionLimit
	default:
		return 0
	}
}

// DeriveEntitlements computes the feature gates for a profile. The dashboard
// and experiments surfaces unlock for paid tiers, or for free accounts that
// have finished the scripted session.
func DeriveEntitlements(p *Profile) Entitlements {
	limit := QuestionLimitFor(p.Tier)
	can := limit == 0 || p.QuestionsAnswered < limit
	remaining := 0
	if limit > 0 {
		remaining = limit - p.QuestionsAnswered
		if remaining < 0 {
			remaining = 0
		}
	}

	ent := Entitlements{
		Tier:               p.Tier,
		QuestionLimit:      limit,
		QuestionsRemaining: remaining,
		CanAskQuestions:    can,
		DashboardEnabled:   p.Tier != TierFree || p.QuestionsAnswered >= freeQuestionLimit,
	}
	ent.ExperimentsEnabled = ent.DashboardEnabled

	if p.Tier == TierFree {
		switch {
		case p.QuestionsAnswered == 0:
			ent.FreePhase = FreePhaseOnboarding
		case p.QuestionsAnswered < freeQuestionLimit:
			ent.FreePhase = FreePhaseAnswering
		default:
			ent.FreePhase = FreePhaseExhausted
		}
	}
	return ent
}
