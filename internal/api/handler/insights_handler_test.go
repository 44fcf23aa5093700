package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/llm"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/google/uuid"
)

func TestInsightsHandler_GetWeeklyStats(t *testing.T) {
	babyID := uuid.New()

	tests := []struct {
		name           string
		query          string
		computeErr     error
		wantStatusCode int
		wantWeekEnd    time.Time
	}{
		{
			name:           "default week",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "explicit week end",
			query:          "?week_end=2024-05-07",
			wantStatusCode: http.StatusOK,
			wantWeekEnd:    time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "invalid week end",
			query:          "?week_end=07/05/2024",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "baby not found",
			computeErr:     domain.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "storage failure",
			computeErr:     errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotWeekEnd time.Time
			weekly := &MockWeeklyService{
				computeFunc: func(ctx context.Context, id uuid.UUID, weekEnd time.Time) (*domain.WeeklyReport, error) {
					gotWeekEnd = weekEnd
					if tt.computeErr != nil {
						return nil, tt.computeErr
					}
					return &domain.WeeklyReport{BabyID: id.String()}, nil
				},
			}
			handler := NewInsightsHandler(weekly, &MockInsightsService{})

			req := newRequest(http.MethodGet, "/v1/babies/"+babyID.String()+"/stats/weekly"+tt.query, "", map[string]string{"babyId": babyID.String()})
			rec := httptest.NewRecorder()

			handler.GetWeeklyStats(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("GetWeeklyStats() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && !gotWeekEnd.Equal(tt.wantWeekEnd) {
				t.Errorf("weekEnd = %v, want %v", gotWeekEnd, tt.wantWeekEnd)
			}
		})
	}
}

func TestInsightsHandler_GetWeeklySummary(t *testing.T) {
	babyID := uuid.New()
	handler := NewInsightsHandler(&MockWeeklyService{}, &MockInsightsService{})

	req := newRequest(http.MethodGet, "/v1/babies/"+babyID.String()+"/stats/weekly/summary", "", map[string]string{"babyId": babyID.String()})
	rec := httptest.NewRecorder()
	handler.GetWeeklySummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetWeeklySummary() status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "Weekly summary for Mila") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestInsightsHandler_GetWeeklyInsights(t *testing.T) {
	babyID := uuid.New()

	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "success", wantStatusCode: http.StatusOK},
		{name: "llm not configured", err: llm.ErrOpenAIUnavailable, wantStatusCode: http.StatusServiceUnavailable},
		{name: "llm request failed", err: llm.ErrOpenAIRequest, wantStatusCode: http.StatusBadGateway},
		{name: "llm bad response", err: llm.ErrOpenAIResponse, wantStatusCode: http.StatusBadGateway},
		{name: "baby not found", err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := &MockInsightsService{}
			if tt.err != nil {
				err := tt.err
				insights.generateFunc = func(ctx context.Context, id uuid.UUID, weekEnd time.Time) (*domain.NarrativeResponse, error) {
					return nil, err
				}
			}
			handler := NewInsightsHandler(&MockWeeklyService{}, insights)

			req := newRequest(http.MethodGet, "/v1/babies/"+babyID.String()+"/insights/weekly", "", map[string]string{"babyId": babyID.String()})
			rec := httptest.NewRecorder()
			handler.GetWeeklyInsights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("GetWeeklyInsights() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			if tt.wantStatusCode == http.StatusOK {
				var resp domain.NarrativeResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.TraceID != "trace-1" || resp.Narrative.Summary == "" {
					t.Errorf("response = %+v", resp)
				}
			}
		})
	}
}

func TestInsightsHandler_PostFeedback(t *testing.T) {
	babyID := uuid.New()

	tests := []struct {
		name           string
		body           string
		feedbackErr    error
		wantStatusCode int
		wantCalls      int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "trace-1", "score": 5, "comment": "helpful"}`,
			wantStatusCode: http.StatusNoContent,
			wantCalls:      1,
		},
		{
			name:           "ingestion failure still accepted",
			body:           `{"trace_id": "trace-1", "score": 3}`,
			feedbackErr:    errors.New("langfuse down"),
			wantStatusCode: http.StatusNoContent,
			wantCalls:      1,
		},
		{
			name:           "missing trace",
			body:           `{"score": 4}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "score out of range",
			body:           `{"trace_id": "trace-1", "score": 6}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			insights := &MockInsightsService{
				feedbackFunc: func(ctx context.Context, id uuid.UUID, fb service.Feedback) error {
					calls++
					if id != babyID {
						t.Errorf("babyID = %v, want %v", id, babyID)
					}
					return tt.feedbackErr
				},
			}
			handler := NewInsightsHandler(&MockWeeklyService{}, insights)

			req := newRequest(http.MethodPost, "/v1/babies/"+babyID.String()+"/insights/weekly/feedback", tt.body, map[string]string{"babyId": babyID.String()})
			rec := httptest.NewRecorder()
			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			if calls != tt.wantCalls {
				t.Errorf("Feedback calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}
