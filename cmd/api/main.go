// Baby Journal API
//
// REST API for logging baby care events and reading feed predictions and weekly insights.
//
//	@title			Baby Journal API
//	@version		1.0
//	@description	Log feeds, sleep and diapers; predict the next feed; summarize the week.
//
//	@BasePath	/v1
//
//	@tag.name			babies
//	@tag.description	Baby profile endpoints
//
//	@tag.name			logs
//	@tag.description	Care event logging and export
//
//	@tag.name			feeds
//	@tag.description	Next-feed prediction
//
//	@tag.name			weekly
//	@tag.description	Weekly stats, summary and insights
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/blaisecz/baby-journal/internal/api"
	"github.com/blaisecz/baby-journal/internal/api/handler"
	"github.com/blaisecz/baby-journal/internal/config"
	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/langfuse"
	"github.com/blaisecz/baby-journal/internal/llm"
	"github.com/blaisecz/baby-journal/internal/repository"
	"github.com/blaisecz/baby-journal/internal/seed"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/blaisecz/baby-journal/internal/telemetry"
)

const serviceName = "baby-journal-api"

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db, &domain.Baby{}, &domain.Log{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	shutdown, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize repositories
	babyRepo := repository.NewBabyRepository(db)
	logRepo := repository.NewLogRepository(db)

	// Initialize services
	babyService := service.NewBabyService(babyRepo)
	logService := service.NewLogService(logRepo, babyRepo)
	predictionService := service.NewPredictionService(logRepo, babyRepo)
	weeklyService := service.NewWeeklyService(logRepo, babyRepo)

	// OpenAI client is nil when no key is set; the insights endpoint then answers 503.
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIWeeklyInsightsModel, time.Duration(cfg.OpenAITimeoutSeconds)*time.Second)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	} else {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    cfg.PromptCachePath,
			Fallback:    llm.DefaultSystemPrompt,
		})
		if err != nil {
			log.Printf("Warning: failed to load system prompt, using built-in: %v", err)
		}
		openaiClient.WithSystemPrompt(prompt)
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	insightsService := service.NewInsightsService(weeklyService, openaiClient, langfuseClient)

	// Initialize handlers
	babyHandler := handler.NewBabyHandler(babyService)
	logHandler := handler.NewLogHandler(logService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	insightsHandler := handler.NewInsightsHandler(weeklyService, insightsService)

	// Setup router
	router := api.NewRouter(babyHandler, logHandler, predictionHandler, insightsHandler)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router.Setup()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
