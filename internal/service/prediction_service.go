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

// PredictionLookbackDays bounds the feed history read for a prediction.
// A week comfortably covers MaxFeedsForPrediction feeds at any age.
const PredictionLookbackDays = 7

// PredictionService estimates the next feed for a baby.
type PredictionService interface {
	// Predict evaluates the prediction and its countdown at now.
	Predict(ctx context.Context, babyID uuid.UUID, now time.Time) (*domain.PredictionResponse, error)
}

type predictionService struct {
	logRepo  repository.LogRepository
	babyRepo repository.BabyRepository
}

func NewPredictionService(logRepo repository.LogRepository, babyRepo repository.BabyRepository) PredictionService {
	return &predictionService{
		logRepo:  logRepo,
		babyRepo: babyRepo,
	}
}

func (s *predictionService) Predict(ctx context.Context, babyID uuid.UUID, now time.Time) (*domain.PredictionResponse, error) {
	tracer := otel.Tracer("baby-journal-api/prediction")
	ctx, span := tracer.Start(ctx, "PredictionService.Predict",
		trace.WithAttributes(
			attribute.String("baby.id", babyID.String()),
			attribute.String("evaluated_at", now.Format(time.RFC3339)),
		),
	)
	defer span.End()

	baby, err := s.babyRepo.GetByID(ctx, babyID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	from := now.AddDate(0, 0, -PredictionLookbackDays)
	feeds, err := s.logRepo.ListByRange(ctx, babyID, from, now, domain.LogTypeFeed)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("feeds.count", len(feeds)))

	inputPayload := map[string]any{
		"baby_id":       babyID.String(),
		"from":          from.Format(time.RFC3339),
		"to":            now.Format(time.RFC3339),
		"feeds":         len(feeds),
		"date_of_birth": baby.DOB(),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	result := analytics.PredictNextFeed(feeds, baby.DOB(), now)
	response := &domain.PredictionResponse{
		Prediction:  result,
		Countdown:   analytics.CountdownFor(result, now),
		EvaluatedAt: now,
	}

	span.SetAttributes(
		attribute.String("prediction.confidence", string(result.Confidence)),
		attribute.Int("prediction.interval_count", result.IntervalCount),
	)
	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}
