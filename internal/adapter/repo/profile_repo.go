package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// GetByEmail fetches a profile by email, case-insensitively.
func (r *ProfileRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByEmail, email)
	return scanProfile(row)
}

// GetByID fetches a profile by UUID.
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByID, id)
	return scanProfile(row)
}

// Create inserts a new profile. Counters start at zero and the answer list
// starts empty regardless of what the struct carries.
func (r *ProfileRepositoryPG) Create(ctx context.Context, p *domain.Profile) error {
	logins, err := marshalLogins(p.DailyLogins)
	if err != nil {
		return err
	}
	_, err = r.sql.Exec(ctx, sqlinline.QInsertProfile,
		p.ID,
		p.Email,
		p.Name,
		string(p.Role),
		string(p.Tier),
		p.LastLoginDate,
		logins,
		p.PasswordHash,
		p.Country,
	)
	return err
}

// Update persists every mutable profile field.
func (r *ProfileRepositoryPG) Update(ctx context.Context, p *domain.Profile) error {
	logins, err := marshalLogins(p.DailyLogins)
	if err != nil {
		return err
	}
	answers, err := marshalAnswers(p.Answers)
	if err != nil {
		return err
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateProfile,
		p.ID,
		p.Name,
		string(p.Role),
		string(p.Tier),
		p.QuestionsAnswered,
		p.ExperimentsCreated,
		nullableString(p.Summary),
		p.SummaryDate,
		p.LastLoginDate,
		logins,
		answers,
		p.Country,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetTier updates only the subscription tier.
func (r *ProfileRepositoryPG) SetTier(ctx context.Context, id string, tier domain.Tier) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateProfileTier, id, string(tier))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all profiles, newest first.
func (r *ProfileRepositoryPG) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p       domain.Profile
		summary *string
		logins  []byte
		answers []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Email,
		&p.Name,
		&p.Role,
		&p.Tier,
		&p.QuestionsAnswered,
		&p.ExperimentsCreated,
		&p.JoinedAt,
		&summary,
		&p.SummaryDate,
		&p.LastLoginDate,
		&logins,
		&answers,
		&p.PasswordHash,
		&p.Country,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if summary != nil {
		p.Summary = *summary
	}
	if len(logins) > 0 {
		if err := json.Unmarshal(logins, &p.DailyLogins); err != nil {
			return nil, fmt.Errorf("decode daily_logins: %w", err)
		}
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &p.Answers); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	}
	return &p, nil
}

func marshalLogins(logins []domain.LoginDay) ([]byte, error) {
	if logins == nil {
		logins = []domain.LoginDay{}
	}
	return json.Marshal(logins)
}

func marshalAnswers(answers []string) ([]byte, error) {
	if answers == nil {
		answers = []string{}
	}
	return json.Marshal(answers)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
