package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
)

func main() {
	var (
		idFlag    string
		emailFlag string
		tierFlag  string
		resetFlag bool
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "user email to update")
	flag.StringVar(&tierFlag, "tier", "pro", "tier to assign (free, pro, premium)")
	flag.BoolVar(&resetFlag, "reset-questions", false, "reset questions_answered to 0")
	flag.Parse()

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(strings.ToLower(emailFlag))
	tier := strings.TrimSpace(strings.ToLower(tierFlag))

	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}
	if !domain.ValidTier(tier) {
		exitWithError(fmt.Errorf("unsupported tier %q", tier))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "usertier").Logger()
	profiles := repo.NewProfileRepository(infra.NewSQLRunner(pool, logger))

	var p *domain.Profile
	if userID != "" {
		p, err = profiles.GetByID(ctx, userID)
	} else {
		p, err = profiles.GetByEmail(ctx, email)
	}
	if err != nil {
		exitWithError(fmt.Errorf("failed to load user: %w", err))
	}

	p.Tier = domain.Tier(tier)
	if resetFlag {
		p.QuestionsAnswered = 0
		p.Answers = nil
	}
	if err := profiles.Update(ctx, p); err != nil {
		exitWithError(fmt.Errorf("failed to update user: %w", err))
	}

	fmt.Printf("User %s (%s) updated to tier %s\n", p.ID, p.Email, p.Tier)
	if resetFlag {
		fmt.Println("questions_answered=0")
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
