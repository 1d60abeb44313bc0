package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"server/internal/infra"
	"server/internal/notify"
	"server/internal/sqlinline"
)

const digestTimeout = 30 * time.Second

type digestWorker struct {
	runner   *infra.SQLRunner
	notifier notify.Notifier
	logger   infra.Logger
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	notifier := notify.NewEmailNotifier(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AdminEmail, logger)
	if notifier == nil {
		logger.Fatal().Msg("worker: RESEND_API_KEY is required for the digest")
	}

	worker := &digestWorker{
		runner:   infra.NewSQLRunner(pool, logger),
		notifier: notifier,
		logger:   logger,
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.DigestSchedule, worker.runDigest); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.DigestSchedule).Msg("worker: invalid digest schedule")
	}
	c.Start()
	logger.Info().Str("schedule", cfg.DigestSchedule).Msg("worker: started")

	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info().Msg("worker: stopped")
}

// runDigest mails the admin the last-24h activity counts.
func (w *digestWorker) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	row := w.runner.QueryRow(ctx, sqlinline.QDigestCounts)
	var signups, summaries, upgrades int
	if err := row.Scan(&signups, &summaries, &upgrades); err != nil {
		w.logger.Error().Err(err).Msg("worker: digest query failed")
		return
	}

	if err := w.notifier.SendDigest(ctx, signups, summaries, upgrades); err != nil {
		w.logger.Error().Err(err).Msg("worker: digest email failed")
		return
	}
	w.logger.Info().
		Int("signups", signups).
		Int("summaries", summaries).
		Int("upgrades", upgrades).
		Msg("worker: digest sent")
}
