package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"server/internal/adapter/repo"
	"server/internal/billing"
	"server/internal/coach"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/notify"
	"server/internal/resources"
	"server/internal/storage"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()
	runner := infra.NewSQLRunner(dbpool, logger)

	redisClient, err := infra.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer redisClient.Close()

	geoResolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}

	fileStore, err := storage.NewFileStore(cfg.TemplateDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure template storage")
	}
	resourceSvc, err := resources.NewService(ctx, fileStore)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to materialize templates")
	}

	app := &handlers.App{
		SQL:    runner,
		Logger: logger,

		Profiles:    repo.NewProfileRepository(runner),
		Checkouts:   repo.NewCheckoutCache(repo.NewCheckoutRepository(runner), redisClient, logger),
		Drafts:      repo.NewDraftStore(redisClient),
		Experiments: repo.NewExperimentRepository(),
		Insights:    repo.NewInsightRepository(),

		Engine:    coach.NewEngine(),
		Resources: resourceSvc,

		JWTSecret:      cfg.JWTSecret,
		AdminEmail:     cfg.AdminEmail,
		ProPriceID:     cfg.ProPriceID,
		PremiumPriceID: cfg.PremiumPriceID,
		DraftTTL:       cfg.DraftTTL,
	}

	gateway, err := billing.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	if err != nil {
		logger.Warn().Err(err).Msg("stripe gateway unavailable, checkout disabled")
		app.CheckoutErr = err
	} else {
		app.Checkout = gateway
		app.Webhooks = gateway
	}

	if notifier := notify.NewEmailNotifier(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AdminEmail, logger); notifier != nil {
		app.Notifier = notifier
	} else {
		logger.Warn().Msg("resend api key missing, email disabled")
	}

	if geoResolver != nil {
		app.Geo = geoResolver
	}

	routerCfg := httpapi.RouterConfig{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   "en",
	}
	if geoResolver != nil {
		routerCfg.CountryLookup = geoResolver.CountryCode
	}
	router := httpapi.NewRouter(app, routerCfg)

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
