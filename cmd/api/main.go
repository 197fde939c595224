package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"icona/internal/adapter/repo"
	"icona/internal/catalog"
	"icona/internal/http/handlers"
	"icona/internal/http/httpapi"
	"icona/internal/infra"
	"icona/internal/pipeline"
	"icona/internal/providers/genai"
	"icona/internal/sanitize"
	"icona/internal/usage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sql := infra.NewSQLRunner(dbpool, logger)
	if err := repo.Migrate(ctx, sql); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	gemini, err := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		HTTPClient: &http.Client{Timeout: cfg.GeminiTimeout},
		Logger:     logger.With().Str("component", "genai").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create gemini client")
	}

	pipe, err := pipeline.New(pipeline.Options{
		Catalog:         catalog.Default(),
		Text:            gemini,
		Images:          gemini,
		Suggestions:     gemini,
		InjectionPolicy: sanitize.ParsePolicy(cfg.PromptInjectionPolicy),
		Logger:          logger.With().Str("component", "pipeline").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build pipeline")
	}

	usageRepo := repo.NewUsageRepository(sql)
	app := handlers.NewApp(handlers.Deps{
		Pipeline:       pipe,
		Credits:        repo.NewCreditRepository(sql),
		Usage:          usage.NewTracker(usageRepo, usage.DefaultPricing, logger.With().Str("component", "usage").Logger()),
		UsageStats:     usageRepo,
		Captioner:      gemini,
		Logger:         logger,
		AdminIDs:       cfg.AdminUserIDs,
		SignupCredits:  cfg.SignupCredits,
		GenerationCost: cfg.GenerationCostCredits,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	router := httpapi.NewRouter(app, httpapi.RouterConfig{
		JWTSecret:       cfg.JWTSecret,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Logger:          logger,
	})

	logger.Info().
		Str("env", cfg.AppEnv).
		Str("text_model", gemini.TextModel()).
		Str("image_model", gemini.ImageModel()).
		Str("injection_policy", cfg.PromptInjectionPolicy).
		Msg("starting api")

	if err := infra.NewHTTPServer(cfg, router, logger).Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
