package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/langfuse"
	"github.com/blaisecz/baby-journal/pkg/pagination"
	"github.com/google/uuid"
)

// MockLogRepository is a mock implementation of LogRepository
type MockLogRepository struct {
	logs            map[uuid.UUID]*domain.Log
	clientRequestID map[string]*domain.Log
	listResult      []domain.Log
	createErr       error
	err             error
	rangeCalls      int
}

func NewMockLogRepository() *MockLogRepository {
	return &MockLogRepository{
		logs:            make(map[uuid.UUID]*domain.Log),
		clientRequestID: make(map[string]*domain.Log),
	}
}

func (m *MockLogRepository) Create(ctx context.Context, log *domain.Log) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs[log.ID] = log
	if log.ClientRequestID != nil {
		key := log.BabyID.String() + ":" + *log.ClientRequestID
		m.clientRequestID[key] = log
	}
	return nil
}

func (m *MockLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.logs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

func (m *MockLogRepository) Update(ctx context.Context, log *domain.Log) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.logs[log.ID]; !ok {
		return domain.ErrNotFound
	}
	m.logs[log.ID] = log
	return nil
}

func (m *MockLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.logs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.logs, id)
	return nil
}

func (m *MockLogRepository) List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) ([]domain.Log, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.Log, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.Log
	for _, log := range m.logs {
		if log.BabyID == babyID {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit := pagination.NormalizeLimit(filter.Limit) + 1; len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockLogRepository) ListByRange(ctx context.Context, babyID uuid.UUID, from, to time.Time, types ...domain.LogType) ([]domain.Log, error) {
	m.rangeCalls++
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Log
	for _, log := range m.logs {
		if log.BabyID != babyID || log.StartedAt.Before(from) || !log.StartedAt.Before(to) {
			continue
		}
		if len(types) > 0 && !containsType(types, log.Type) {
			continue
		}
		result = append(result, *log)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result, nil
}

func (m *MockLogRepository) GetByClientRequestID(ctx context.Context, babyID uuid.UUID, clientRequestID string) (*domain.Log, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.clientRequestID[babyID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return log, nil
}

func (m *MockLogRepository) add(log domain.Log) *domain.Log {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	m.logs[log.ID] = &log
	return &log
}

func containsType(types []domain.LogType, t domain.LogType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// MockBabyRepository is a mock implementation of BabyRepository
type MockBabyRepository struct {
	babies map[uuid.UUID]*domain.Baby
	err    error
}

func NewMockBabyRepository() *MockBabyRepository {
	return &MockBabyRepository{
		babies: make(map[uuid.UUID]*domain.Baby),
	}
}

func (m *MockBabyRepository) Create(ctx context.Context, baby *domain.Baby) error {
	if m.err != nil {
		return m.err
	}
	if baby.ID == uuid.Nil {
		baby.ID = uuid.New()
	}
	m.babies[baby.ID] = baby
	return nil
}

func (m *MockBabyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error) {
	if m.err != nil {
		return nil, m.err
	}
	baby, ok := m.babies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return baby, nil
}

func (m *MockBabyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.babies[id]
	return ok, nil
}

// MockPredictionService is a concurrency-safe PredictionService stub.
type MockPredictionService struct {
	mu     sync.Mutex
	calls  int
	result *domain.PredictionResponse
	err    error
}

func (m *MockPredictionService) Predict(ctx context.Context, babyID uuid.UUID, now time.Time) (*domain.PredictionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *MockPredictionService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockLLM is a mock implementation of WeeklyNarrativeLLM
type MockLLM struct {
	narrative *domain.LLMWeeklyNarrative
	err       error
	lastInput *domain.WeeklyReport
}

func (m *MockLLM) GenerateWeeklyNarrative(ctx context.Context, report *domain.WeeklyReport) (*domain.LLMWeeklyNarrative, error) {
	m.lastInput = report
	if m.err != nil {
		return nil, m.err
	}
	return m.narrative, nil
}

// MockLangfuse records traces and scores.
type MockLangfuse struct {
	enabled  bool
	traceErr error
	scoreErr error
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
}

func (m *MockLangfuse) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	id := in.ID
	if id == "" {
		id = "generated-trace"
	}
	return id, m.traceErr
}

func (m *MockLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.scoreErr
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestBaby(repo *MockBabyRepository, dob *time.Time, tz string) *domain.Baby {
	baby := &domain.Baby{
		ID:          uuid.New(),
		FamilyID:    uuid.New(),
		Name:        "Mila",
		DateOfBirth: dob,
		Timezone:    tz,
	}
	repo.babies[baby.ID] = baby
	return baby
}
