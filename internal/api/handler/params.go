package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blaisecz/baby-journal/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseBabyID reads the babyId path parameter, writing a 400 on failure.
func parseBabyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "babyId"))
	if err != nil {
		problem.BadRequest("Invalid baby ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// parseTimeParam accepts RFC3339 or a bare YYYY-MM-DD (UTC midnight).
func parseTimeParam(r *http.Request, name string) (*time.Time, *problem.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	return nil, &problem.FieldError{
		Field:   name,
		Message: "must be a valid RFC3339 timestamp or YYYY-MM-DD date",
	}
}
