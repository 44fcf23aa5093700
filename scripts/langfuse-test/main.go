// Script to check the Langfuse wiring end to end: prompt fetch, a
// weekly-insights shaped trace, and a parent_rating score on it.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/baby-journal/internal/config"
	"github.com/blaisecz/baby-journal/internal/langfuse"
	"github.com/blaisecz/baby-journal/internal/llm"
	"github.com/blaisecz/baby-journal/internal/seed"
	"github.com/blaisecz/baby-journal/internal/service"
)

func main() {
	cfg := config.Load()

	fmt.Println("=== Langfuse Check ===")
	fmt.Printf("Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Printf("Environment: %s\n", cfg.LangfuseEnv)
	fmt.Printf("Prompt:      %s@%s\n", cfg.LangfusePromptName, cfg.LangfusePromptLabel)
	fmt.Println()

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})
	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		Fallback:    llm.DefaultSystemPrompt,
	})
	if err != nil {
		log.Fatalf("Failed to load prompt: %v", err)
	}
	source := "langfuse"
	if prompt == llm.DefaultSystemPrompt {
		source = "built-in fallback"
	}
	fmt.Printf("✓ Prompt loaded from %s (%d chars)\n", source, len(prompt))

	baby := seed.Babies[0]
	weekEnd := time.Now().UTC()
	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		Name:      "weekly-insights",
		UserID:    baby.FamilyID.String(),
		SessionID: baby.ID.String(),
		Input: map[string]any{
			"baby_name": baby.Name,
			"week_end":  weekEnd.Format("2006-01-02"),
		},
		Output: map[string]any{
			"summary": "connectivity check",
		},
		Tags: []string{"weekly", "manual"},
		Metadata: map[string]any{
			"range_start": weekEnd.AddDate(0, 0, -6).Format("2006-01-02"),
			"range_end":   weekEnd.Format("2006-01-02"),
		},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}
	fmt.Println("✓ Trace created")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    service.FeedbackScoreName,
		Value:   5,
		Comment: "langfuse-test script",
	}); err != nil {
		log.Fatalf("Failed to create score: %v", err)
	}
	fmt.Printf("✓ Score %q attached\n", service.FeedbackScoreName)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
