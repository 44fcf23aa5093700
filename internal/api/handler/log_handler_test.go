package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
)

func TestLogHandler_Create(t *testing.T) {
	babyID := uuid.New()

	tests := []struct {
		name           string
		babyID         string
		body           string
		mockService    *MockLogService
		wantStatusCode int
	}{
		{
			name:           "bottle feed",
			babyID:         babyID.String(),
			body:           `{"type": "feed", "started_at": "2024-05-01T09:00:00Z", "ended_at": "2024-05-01T09:15:00Z", "metadata": {"feed_type": "bottle", "amount_ml": 120}}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid baby ID",
			babyID:         "not-a-uuid",
			body:           `{"type": "feed", "started_at": "2024-05-01T09:00:00Z"}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			babyID:         babyID.String(),
			body:           `{invalid}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown type",
			babyID:         babyID.String(),
			body:           `{"type": "bath", "started_at": "2024-05-01T09:00:00Z"}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "end before start",
			babyID:         babyID.String(),
			body:           `{"type": "sleep", "started_at": "2024-05-01T09:00:00Z", "ended_at": "2024-05-01T08:00:00Z"}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "invalid metadata",
			babyID: babyID.String(),
			body:   `{"type": "feed", "started_at": "2024-05-01T09:00:00Z", "metadata": {"feed_type": "spoon"}}`,
			mockService: &MockLogService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error) {
					return nil, false, fmt.Errorf("%w: feed_type must be nursing or bottle", domain.ErrInvalidMetadata)
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "baby not found",
			babyID: babyID.String(),
			body:   `{"type": "diaper", "started_at": "2024-05-01T09:00:00Z"}`,
			mockService: &MockLogService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error) {
					return nil, false, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "idempotent request returns 200",
			babyID: babyID.String(),
			body:   `{"type": "diaper", "started_at": "2024-05-01T09:00:00Z", "client_request_id": "req-123"}`,
			mockService: &MockLogService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error) {
					return &domain.Log{ID: uuid.New(), BabyID: id, Type: req.Type, ClientRequestID: req.ClientRequestID}, true, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLogHandler(tt.mockService)
			req := newRequest(http.MethodPost, "/v1/babies/"+tt.babyID+"/logs", tt.body, map[string]string{"babyId": tt.babyID})
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestLogHandler_List(t *testing.T) {
	babyID := uuid.New()

	tests := []struct {
		name           string
		queryParams    string
		mockService    *MockLogService
		wantStatusCode int
		checkFilter    func(*testing.T, domain.LogFilter)
	}{
		{
			name:           "no filters",
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "type and range",
			queryParams:    "?type=feed&from=2024-05-01T00:00:00Z&to=2024-05-08&limit=10&cursor=abc",
			wantStatusCode: http.StatusOK,
			checkFilter: func(t *testing.T, f domain.LogFilter) {
				if f.Type == nil || *f.Type != domain.LogTypeFeed {
					t.Errorf("Type = %v, want feed", f.Type)
				}
				if f.From == nil || f.To == nil {
					t.Fatal("From/To not parsed")
				}
				if !f.To.Equal(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("To = %v", f.To)
				}
				if f.Limit != 10 || f.Cursor != "abc" {
					t.Errorf("Limit/Cursor = %d/%q", f.Limit, f.Cursor)
				}
			},
		},
		{
			name:           "invalid type",
			queryParams:    "?type=bath",
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid from",
			queryParams:    "?from=yesterday",
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid limit",
			queryParams:    "?limit=0",
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockService
			var captured domain.LogFilter
			if svc == nil {
				svc = &MockLogService{
					listFunc: func(ctx context.Context, id uuid.UUID, filter domain.LogFilter) (*domain.LogListResponse, error) {
						captured = filter
						return &domain.LogListResponse{Data: []domain.LogResponse{}}, nil
					},
				}
			}
			handler := NewLogHandler(svc)
			req := newRequest(http.MethodGet, "/v1/babies/"+babyID.String()+"/logs"+tt.queryParams, "", map[string]string{"babyId": babyID.String()})
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.checkFilter != nil {
				tt.checkFilter(t, captured)
			}
		})
	}
}

func TestLogHandler_Update(t *testing.T) {
	babyID := uuid.New()
	logID := uuid.New()

	tests := []struct {
		name           string
		logID          string
		body           string
		mockService    *MockLogService
		wantStatusCode int
	}{
		{
			name:           "update notes",
			logID:          logID.String(),
			body:           `{"notes": "fussy"}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid log ID",
			logID:          "nope",
			body:           `{"notes": "fussy"}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "negative duration",
			logID:          logID.String(),
			body:           `{"duration_seconds": -5}`,
			mockService:    &MockLogService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "log not found",
			logID: logID.String(),
			body:  `{"notes": "fussy"}`,
			mockService: &MockLogService{
				updateFunc: func(ctx context.Context, b, l uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLogHandler(tt.mockService)
			params := map[string]string{"babyId": babyID.String(), "logId": tt.logID}
			req := newRequest(http.MethodPatch, "/v1/babies/"+babyID.String()+"/logs/"+tt.logID, tt.body, params)
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Update() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestLogHandler_Update_NullClearsField(t *testing.T) {
	babyID := uuid.New()
	logID := uuid.New()

	var got *domain.UpdateLogRequest
	handler := NewLogHandler(&MockLogService{
		updateFunc: func(ctx context.Context, b, l uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error) {
			got = req
			return &domain.Log{ID: l, BabyID: b, Type: domain.LogTypeSleep}, nil
		},
	})

	params := map[string]string{"babyId": babyID.String(), "logId": logID.String()}
	req := newRequest(http.MethodPatch, "/v1/babies/"+babyID.String()+"/logs/"+logID.String(), `{"ended_at": null, "notes": "woke early"}`, params)
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Update() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got == nil {
		t.Fatal("service was not called")
	}
	if !got.Clears("ended_at") {
		t.Error("expected ended_at to be cleared")
	}
	if got.Clears("notes") || got.Notes == nil || *got.Notes != "woke early" {
		t.Errorf("notes should be set, got Clear=%v Notes=%v", got.Clear, got.Notes)
	}
}

func TestLogHandler_Delete(t *testing.T) {
	babyID := uuid.New()
	logID := uuid.New()
	params := map[string]string{"babyId": babyID.String(), "logId": logID.String()}

	handler := NewLogHandler(&MockLogService{})
	rec := httptest.NewRecorder()
	handler.Delete(rec, newRequest(http.MethodDelete, "/", "", params))
	if rec.Code != http.StatusNoContent {
		t.Errorf("Delete() status = %d, want 204", rec.Code)
	}

	handler = NewLogHandler(&MockLogService{
		deleteFunc: func(ctx context.Context, b, l uuid.UUID) error { return domain.ErrNotFound },
	})
	rec = httptest.NewRecorder()
	handler.Delete(rec, newRequest(http.MethodDelete, "/", "", params))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Delete() status = %d, want 404", rec.Code)
	}
}

func TestLogHandler_ExportCSV(t *testing.T) {
	babyID := uuid.New()
	params := map[string]string{"babyId": babyID.String()}

	t.Run("explicit range", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		handler := NewLogHandler(&MockLogService{
			exportFunc: func(ctx context.Context, id uuid.UUID, from, to time.Time, w io.Writer) error {
				gotFrom, gotTo = from, to
				_, err := io.WriteString(w, "log_id,baby_id\n")
				return err
			},
		})
		rec := httptest.NewRecorder()
		handler.ExportCSV(rec, newRequest(http.MethodGet, "/export.csv?from=2024-05-01&to=2024-05-08", "", params))

		if rec.Code != http.StatusOK {
			t.Fatalf("ExportCSV() status = %d, body: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "baby-journal-2024-05-01-2024-05-08.csv") {
			t.Errorf("Content-Disposition = %q", cd)
		}
		if !gotFrom.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) || !gotTo.Equal(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("range = %v..%v", gotFrom, gotTo)
		}
		if !strings.HasPrefix(rec.Body.String(), "log_id") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		handler := NewLogHandler(&MockLogService{})
		rec := httptest.NewRecorder()
		handler.ExportCSV(rec, newRequest(http.MethodGet, "/export.csv?from=2024-05-08&to=2024-05-01", "", params))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("ExportCSV() status = %d, want 400", rec.Code)
		}
	})

	t.Run("baby not found", func(t *testing.T) {
		handler := NewLogHandler(&MockLogService{
			exportFunc: func(ctx context.Context, id uuid.UUID, from, to time.Time, w io.Writer) error {
				return domain.ErrNotFound
			},
		})
		rec := httptest.NewRecorder()
		handler.ExportCSV(rec, newRequest(http.MethodGet, "/export.csv", "", params))
		if rec.Code != http.StatusNotFound {
			t.Errorf("ExportCSV() status = %d, want 404", rec.Code)
		}
	})
}
