package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/baby-journal/internal/api/validation"
	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/blaisecz/baby-journal/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DefaultExportDays is the export window when no range is given.
const DefaultExportDays = 30

type LogHandler struct {
	service service.LogService
}

func NewLogHandler(service service.LogService) *LogHandler {
	return &LogHandler{service: service}
}

// Create handles POST /v1/babies/{babyId}/logs
// @Summary Record a caregiving event
// @Description Log a feed, sleep, diaper, health or milestone event. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags logs
// @Accept json
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param request body domain.CreateLogRequest true "Event data"
// @Success 201 {object} domain.LogResponse "New log created"
// @Success 200 {object} domain.LogResponse "Existing log returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or metadata"
// @Failure 404 {object} problem.Problem "Baby not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /babies/{babyId}/logs [post]
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	var req domain.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Create(r.Context(), babyID, &req)
	if err != nil {
		writeLogError(w, err, "Failed to create log")
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK
	}
	writeJSON(w, status, entry.ToResponse())
}

// List handles GET /v1/babies/{babyId}/logs
// @Summary List logs
// @Description Fetch paginated history, newest first. Filter by type and date range.
// @Tags logs
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param type query string false "Event type" Enums(feed, sleep, diaper, health, milestone)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.LogListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Baby not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /babies/{babyId}/logs [get]
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), babyID, filter)
	if err != nil {
		writeLogError(w, err, "Failed to list logs")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Update handles PATCH /v1/babies/{babyId}/logs/{logId}
// @Summary Edit a log
// @Description Partially update an event. Omitted fields are left unchanged; null clears ended_at, duration_seconds or notes. Metadata is revalidated against the log type.
// @Tags logs
// @Accept json
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param logId path string true "Log UUID" format(uuid)
// @Param request body domain.UpdateLogRequest true "Fields to update"
// @Success 200 {object} domain.LogResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId}/logs/{logId} [patch]
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}
	logID, err := uuid.Parse(chi.URLParam(r, "logId"))
	if err != nil {
		problem.BadRequest("Invalid log ID format").Write(w)
		return
	}

	var req domain.UpdateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Update(r.Context(), babyID, logID, &req)
	if err != nil {
		writeLogError(w, err, "Failed to update log")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Delete handles DELETE /v1/babies/{babyId}/logs/{logId}
// @Summary Delete a log
// @Tags logs
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param logId path string true "Log UUID" format(uuid)
// @Success 204 "Log deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId}/logs/{logId} [delete]
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}
	logID, err := uuid.Parse(chi.URLParam(r, "logId"))
	if err != nil {
		problem.BadRequest("Invalid log ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), babyID, logID); err != nil {
		writeLogError(w, err, "Failed to delete log")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV handles GET /v1/babies/{babyId}/logs/export.csv
// @Summary Export logs as CSV
// @Description Download every log in [from, to) as CSV. Defaults to the last 30 days.
// @Tags logs
// @Produce text/csv
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "End of range, exclusive (RFC3339 or YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId}/logs/export.csv [get]
func (h *LogHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	var fieldErrors []problem.FieldError
	from, fe := parseTimeParam(r, "from")
	if fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	to, fe := parseTimeParam(r, "to")
	if fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	end := time.Now().UTC()
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -DefaultExportDays)
	if from != nil {
		start = *from
	}
	if !start.Before(end) {
		problem.BadRequest("from must be before to").Write(w)
		return
	}

	// Buffer so a storage error can still become a problem response.
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), babyID, start, end, &buf); err != nil {
		writeLogError(w, err, "Failed to export logs")
		return
	}

	filename := fmt.Sprintf("baby-journal-%s-%s.csv", start.Format(dateLayout), end.Format(dateLayout))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[http] export write failed: %v", err)
	}
}

func writeLogError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Baby or log not found").Write(w)
	case errors.Is(err, domain.ErrInvalidMetadata), errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict("Log conflicts with an existing record").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

func parseListFilter(r *http.Request) (domain.LogFilter, []problem.FieldError) {
	var filter domain.LogFilter
	var fieldErrors []problem.FieldError

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		t := domain.LogType(typeStr)
		if !t.Valid() {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "type",
				Message: "must be one of: feed sleep diaper health milestone",
			})
		} else {
			filter.Type = &t
		}
	}

	if from, fe := parseTimeParam(r, "from"); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	} else {
		filter.From = from
	}

	if to, fe := parseTimeParam(r, "to"); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	} else {
		filter.To = to
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
