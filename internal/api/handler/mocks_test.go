package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockBabyService is a mock implementation of BabyService
type MockBabyService struct {
	createFunc  func(ctx context.Context, req *domain.CreateBabyRequest) (*domain.Baby, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Baby, error)
}

func (m *MockBabyService) Create(ctx context.Context, req *domain.CreateBabyRequest) (*domain.Baby, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Baby{
		ID:        uuid.New(),
		FamilyID:  req.FamilyID,
		Name:      req.Name,
		Timezone:  req.Timezone,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockBabyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Baby{ID: id, Name: "Mila", Timezone: "UTC"}, nil
}

// MockLogService is a mock implementation of LogService
type MockLogService struct {
	createFunc func(ctx context.Context, babyID uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error)
	updateFunc func(ctx context.Context, babyID, logID uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error)
	deleteFunc func(ctx context.Context, babyID, logID uuid.UUID) error
	listFunc   func(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) (*domain.LogListResponse, error)
	exportFunc func(ctx context.Context, babyID uuid.UUID, from, to time.Time, w io.Writer) error
}

func (m *MockLogService) Create(ctx context.Context, babyID uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, babyID, req)
	}
	return &domain.Log{
		ID:        uuid.New(),
		BabyID:    babyID,
		Type:      req.Type,
		StartedAt: req.StartedAt,
		EndedAt:   req.EndedAt,
		CreatedAt: time.Now(),
	}, false, nil
}

func (m *MockLogService) Update(ctx context.Context, babyID, logID uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, babyID, logID, req)
	}
	return &domain.Log{
		ID:        logID,
		BabyID:    babyID,
		Type:      domain.LogTypeFeed,
		StartedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Notes:     req.Notes,
	}, nil
}

func (m *MockLogService) Delete(ctx context.Context, babyID, logID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, babyID, logID)
	}
	return nil
}

func (m *MockLogService) List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) (*domain.LogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, babyID, filter)
	}
	return &domain.LogListResponse{
		Data:       []domain.LogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockLogService) ExportCSV(ctx context.Context, babyID uuid.UUID, from, to time.Time, w io.Writer) error {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, babyID, from, to, w)
	}
	_, err := io.WriteString(w, strings.Join(service.ExportHeader, ",")+"\n")
	return err
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	predictFunc func(ctx context.Context, babyID uuid.UUID, now time.Time) (*domain.PredictionResponse, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, babyID uuid.UUID, now time.Time) (*domain.PredictionResponse, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, babyID, now)
	}
	return &domain.PredictionResponse{
		Prediction:  domain.PredictionResult{Confidence: domain.ConfidenceLow},
		Countdown:   domain.Countdown{Label: "No feeds logged yet"},
		EvaluatedAt: now,
	}, nil
}

// MockWeeklyService is a mock implementation of WeeklyService
type MockWeeklyService struct {
	computeFunc func(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.WeeklyReport, error)
	summaryFunc func(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (string, error)
}

func (m *MockWeeklyService) Compute(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.WeeklyReport, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, babyID, weekEnd)
	}
	return &domain.WeeklyReport{BabyID: babyID.String(), BabyName: "Mila"}, nil
}

func (m *MockWeeklyService) Summary(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (string, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, babyID, weekEnd)
	}
	return "Weekly summary for Mila\n", nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.NarrativeResponse, error)
	feedbackFunc func(ctx context.Context, babyID uuid.UUID, fb service.Feedback) error
}

func (m *MockInsightsService) Generate(ctx context.Context, babyID uuid.UUID, weekEnd time.Time) (*domain.NarrativeResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, babyID, weekEnd)
	}
	return &domain.NarrativeResponse{
		Report:    domain.WeeklyReport{BabyID: babyID.String()},
		Narrative: domain.LLMWeeklyNarrative{Summary: "A steady week."},
		TraceID:   "trace-1",
	}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, babyID uuid.UUID, fb service.Feedback) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, babyID, fb)
	}
	return nil
}

// newRequest builds a request with chi URL params attached.
func newRequest(method, target string, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
