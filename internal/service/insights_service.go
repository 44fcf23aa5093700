package service

import (
	"context"
	"log"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/langfuse"
	"github.com/blaisecz/baby-journal/internal/llm"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// FeedbackScoreName is the Langfuse score parents' ratings are stored under.
const FeedbackScoreName = "parent_rating"

// Feedback is a parent's rating of a generated narrative.
type Feedback struct {
	TraceID string
	Score   int
	Comment string
}

// InsightsService turns the weekly report into an LLM narrative.
type InsightsService interface {
	// Generate builds the weekly report ending on weekEnd and asks the LLM
	// to narrate it.
	Generate(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.NarrativeResponse, error)
	// Feedback records a rating against an earlier narrative trace.
	Feedback(ctx context.Context, babyID uuid.UUID, fb Feedback) error
}

type insightsService struct {
	weeklyService  WeeklyService
	llmClient      llm.WeeklyNarrativeLLM
	langfuseClient langfuse.Client
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	weeklyService WeeklyService,
	llmClient llm.WeeklyNarrativeLLM,
	langfuseClient langfuse.Client,
) InsightsService {
	return &insightsService{
		weeklyService:  weeklyService,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.NarrativeResponse, error) {
	report, err := s.weeklyService.Compute(ctx, babyID, weekEnd)
	if err != nil {
		return nil, err
	}

	narrative, err := s.llmClient.GenerateWeeklyNarrative(ctx, report)
	if err != nil {
		return nil, err
	}

	response := &domain.NarrativeResponse{
		Report:    *report,
		Narrative: *narrative,
	}

	// Reuse the OTEL trace ID so feedback lands on the exported trace.
	var traceID string
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		id, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			ID:        traceID,
			UserID:    report.FamilyID,
			SessionID: report.BabyID,
			Name:      "weekly-insights",
			Input:     report,
			Output:    narrative,
			Tags:      []string{"weekly"},
			Metadata: map[string]any{
				"range_start": report.Stats.RangeStart.Format(time.RFC3339),
				"range_end":   report.Stats.RangeEnd.Format(time.RFC3339),
			},
		})
		if err != nil {
			log.Printf("[insights] langfuse trace failed: %v", err)
		}
		traceID = id
	}
	response.TraceID = traceID

	return response, nil
}

func (s *insightsService) Feedback(ctx context.Context, babyID uuid.UUID, fb Feedback) error {
	if s.langfuseClient == nil || !s.langfuseClient.IsEnabled() {
		log.Printf("[insights] feedback for baby %s dropped: langfuse disabled", babyID)
		return nil
	}
	return s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: fb.TraceID,
		Name:    FeedbackScoreName,
		Value:   float64(fb.Score),
		Comment: fb.Comment,
	})
}
