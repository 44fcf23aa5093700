package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/baby-journal/internal/analytics"
	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WeeklyService builds the weekly statistics report for a baby.
type WeeklyService interface {
	// Compute aggregates the 7 local days ending on weekEnd, compared with
	// the 7 days before. Only weekEnd's calendar date is used, interpreted in
	// the baby's timezone; a zero weekEnd means today.
	Compute(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.WeeklyReport, error)
	// Summary renders the same report as shareable plain text.
	Summary(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (string, error)
}

type weeklyService struct {
	logRepo  repository.LogRepository
	babyRepo repository.BabyRepository
	now      func() time.Time
}

func NewWeeklyService(logRepo repository.LogRepository, babyRepo repository.BabyRepository) WeeklyService {
	return &weeklyService{
		logRepo:  logRepo,
		babyRepo: babyRepo,
		now:      time.Now,
	}
}

func (s *weeklyService) Compute(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.WeeklyReport, error) {
	tracer := otel.Tracer("baby-journal-api/weekly")
	ctx, span := tracer.Start(ctx, "WeeklyService.Compute",
		trace.WithAttributes(
			attribute.String("baby.id", babyID.String()),
			attribute.String("week.end", weekEnd.Format(time.RFC3339)),
		),
	)
	defer span.End()

	baby, err := s.babyRepo.GetByID(ctx, babyID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	loc := baby.Location()
	weekEnd = s.resolveWeekEnd(weekEnd, loc)

	start := analytics.WeekStart(weekEnd, loc)
	prevStart := start.AddDate(0, 0, -analytics.DaysPerWeek)
	end := start.AddDate(0, 0, analytics.DaysPerWeek)

	// One read covers both windows.
	logs, err := s.logRepo.ListByRange(ctx, babyID, prevStart, end)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var current, previous []domain.Log
	for _, l := range logs {
		if l.StartedAt.Before(start) {
			previous = append(previous, l)
		} else {
			current = append(current, l)
		}
	}
	span.SetAttributes(
		attribute.Int("logs.current", len(current)),
		attribute.Int("logs.previous", len(previous)),
	)

	inputPayload := map[string]any{
		"baby_id":  babyID.String(),
		"from":     start.Format(time.RFC3339),
		"to":       end.Format(time.RFC3339),
		"timezone": loc.String(),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	stats := analytics.BuildWeeklyStats(current, previous, weekEnd, loc, baby.DOB())
	insights := analytics.BuildWeeklyInsights(analytics.InsightInput{
		Stats:       stats,
		Logs:        current,
		DateOfBirth: baby.DOB(),
		Location:    loc,
		Now:         weekEnd,
	})

	report := &domain.WeeklyReport{
		BabyID:   baby.ID.String(),
		FamilyID: baby.FamilyID.String(),
		BabyName: baby.Name,
		Stats:    stats,
		Insights: insights,
	}

	if outputJSON, err := json.Marshal(report.Stats.Totals); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	span.SetAttributes(attribute.Int("insights.cards", len(insights.Cards)))

	return report, nil
}

// resolveWeekEnd pins weekEnd to the last instant of its calendar date in
// loc, or to the current instant when weekEnd is zero.
func (s *weeklyService) resolveWeekEnd(weekEnd time.Time, loc *time.Location) time.Time {
	if weekEnd.IsZero() {
		return s.now().In(loc)
	}
	y, m, d := weekEnd.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(-time.Second)
}

func (s *weeklyService) Summary(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (string, error) {
	report, err := s.Compute(ctx, babyID, weekEnd)
	if err != nil {
		return "", err
	}
	return analytics.FormatWeeklySummary(report.BabyName, *report), nil
}
