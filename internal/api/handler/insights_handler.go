package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/llm"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/blaisecz/baby-journal/pkg/problem"
)

// InsightsHandler handles weekly statistics and insights endpoints.
type InsightsHandler struct {
	weeklyService   service.WeeklyService
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(weeklyService service.WeeklyService, insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		weeklyService:   weeklyService,
		insightsService: insightsService,
	}
}

// GetWeeklyStats handles GET /v1/babies/{babyId}/stats/weekly
// @Summary Weekly statistics
// @Description Aggregate the 7 local days ending on week_end (default today in the baby's timezone) with week-over-week deltas and derived insights.
// @Tags weekly
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param week_end query string false "Last day of the window (YYYY-MM-DD)" example(2024-05-07)
// @Success 200 {object} domain.WeeklyReport
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Baby not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /babies/{babyId}/stats/weekly [get]
func (h *InsightsHandler) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}
	weekEnd, ok := parseWeekEnd(w, r)
	if !ok {
		return
	}

	report, err := h.weeklyService.Compute(r.Context(), babyID, weekEnd)
	if err != nil {
		writeWeeklyError(w, err, "Failed to compute weekly stats")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetWeeklySummary handles GET /v1/babies/{babyId}/stats/weekly/summary
// @Summary Weekly text summary
// @Description Plain-text, shareable rendering of the weekly report.
// @Tags weekly
// @Produce plain
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param week_end query string false "Last day of the window (YYYY-MM-DD)" example(2024-05-07)
// @Success 200 {string} string "Summary text"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId}/stats/weekly/summary [get]
func (h *InsightsHandler) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}
	weekEnd, ok := parseWeekEnd(w, r)
	if !ok {
		return
	}

	text, err := h.weeklyService.Summary(r.Context(), babyID, weekEnd)
	if err != nil {
		writeWeeklyError(w, err, "Failed to build weekly summary")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// GetWeeklyInsights handles GET /v1/babies/{babyId}/insights/weekly
// @Summary LLM weekly narrative
// @Description Generate a parent-facing narrative over the weekly report. The returned trace_id can be used to submit feedback.
// @Tags weekly
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param week_end query string false "Last day of the window (YYYY-MM-DD)" example(2024-05-07)
// @Success 200 {object} domain.NarrativeResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Baby not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /babies/{babyId}/insights/weekly [get]
func (h *InsightsHandler) GetWeeklyInsights(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}
	weekEnd, ok := parseWeekEnd(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), babyID, weekEnd)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
			return
		}
		writeWeeklyError(w, err, "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for rating a weekly narrative.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Spot on about the night feeds"`
}

// PostFeedback handles POST /v1/babies/{babyId}/insights/weekly/feedback
// @Summary Rate a weekly narrative
// @Description Submit a parent rating and optional comment for a previous insights response.
// @Tags weekly
// @Accept json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /babies/{babyId}/insights/weekly/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Feedback is best effort; ingestion failures never reach the parent.
	err := h.insightsService.Feedback(r.Context(), babyID, service.Feedback{
		TraceID: req.TraceID,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		log.Printf("[insights] feedback for trace %s not recorded: %v", req.TraceID, err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseWeekEnd reads week_end as a calendar date. A missing value yields
// the zero time, which the service treats as today.
func parseWeekEnd(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("week_end")
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{{
			Field:   "week_end",
			Message: "must be a date in YYYY-MM-DD format",
		}}).Write(w)
		return time.Time{}, false
	}
	return t, true
}

func writeWeeklyError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, domain.ErrNotFound) {
		problem.NotFound("Baby not found").Write(w)
		return
	}
	problem.InternalError(fallback).Write(w)
}
