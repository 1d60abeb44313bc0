package repo

import (
	"context"
	"sync"
	"time"

	"server/internal/domain"
)

// ExperimentRepositoryDemo serves the fixed experiment dataset. Experiments
// have no persistence path yet, so every user sees the same two entries
// stamped with their own user id.
type ExperimentRepositoryDemo struct{}

// NewExperimentRepository creates the demo experiment repo.
func NewExperimentRepository() *ExperimentRepositoryDemo {
	return &ExperimentRepositoryDemo{}
}

// ListByUser returns the demo experiments attributed to userID.
func (r *ExperimentRepositoryDemo) ListByUser(ctx context.Context, userID string) ([]domain.Experiment, error) {
	return []domain.Experiment{
		{
			ID:          "1",
			UserID:      userID,
			Title:       "Landing Page A/B Test",
			Description: "Testing two different headlines to improve conversion rates",
			Hypothesis:  "A more specific headline will increase conversion by 15%",
			Status:      domain.ExperimentRunning,
			StartDate:   "2024-01-15",
			Metrics: []domain.Metric{
				{Name: "Conversion Rate", Value: 3.2, Target: 5.0, Unit: "%"},
				{Name: "Click-through Rate", Value: 8.5, Target: 10.0, Unit: "%"},
			},
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			UserID:      userID,
			Title:       "Email Sequence Optimization",
			Description: "Testing different email timing and content",
			Hypothesis:  "Shorter emails with clearer CTAs will improve engagement",
			Status:      domain.ExperimentCompleted,
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-14",
			Metrics: []domain.Metric{
				{Name: "Open Rate", Value: 24.5, Target: 20.0, Unit: "%"},
				{Name: "Click Rate", Value: 4.2, Target: 3.5, Unit: "%"},
			},
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil
}

// InsightRepositoryDemo serves the fixed admin-insight dataset. Read state
// is tracked in memory per process.
type InsightRepositoryDemo struct {
	mu   sync.Mutex
	read map[string]bool
}

// NewInsightRepository creates the demo insight repo.
func NewInsightRepository() *InsightRepositoryDemo {
	return &InsightRepositoryDemo{read: map[string]bool{
		"2": true,
		"3": true,
	}}
}

// List returns the demo insights with current read state applied.
func (r *InsightRepositoryDemo) List(ctx context.Context) ([]domain.AdminInsight, error) {
	insights := []domain.AdminInsight{
		{
			ID:        "1",
			UserID:    "user-1",
			Message:   "Your recent experiment on email sequences showed great results! Consider scaling this approach to your main onboarding flow. The 24% open rate is well above industry average.",
			Timestamp: time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			UserID:    "user-2",
			Message:   "I noticed you've been asking about customer retention. Based on your data, implementing a weekly check-in email could improve your retention by 15-20%. Happy to discuss implementation strategies.",
			Timestamp: time.Date(2024, 1, 19, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			UserID:    "user-3",
			Message:   "Your CAC has been trending upward. Consider focusing on organic channels or referral programs. Your current customers seem highly engaged - they could be great advocates.",
			Timestamp: time.Date(2024, 1, 18, 9, 15, 0, 0, time.UTC),
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range insights {
		insights[i].Read = r.read[insights[i].ID]
	}
	return insights, nil
}

// MarkRead flags an insight as read.
func (r *InsightRepositoryDemo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read[id] = true
	return nil
}

var (
	_ domain.ExperimentRepository = (*ExperimentRepositoryDemo)(nil)
	_ domain.InsightRepository    = (*InsightRepositoryDemo)(nil)
)
