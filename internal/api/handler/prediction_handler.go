package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/blaisecz/baby-journal/pkg/problem"
)

type PredictionHandler struct {
	service service.PredictionService
	now     func() time.Time
}

func NewPredictionHandler(service service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service, now: time.Now}
}

// Get handles GET /v1/babies/{babyId}/feeds/prediction
// @Summary Predict the next feed
// @Description Estimate when the next feed is due from recent completed feeds, with a countdown evaluated at the given instant (default now).
// @Tags feeds
// @Produce json
// @Param babyId path string true "Baby UUID" format(uuid)
// @Param at query string false "Evaluation instant (RFC3339)" format(date-time)
// @Success 200 {object} domain.PredictionResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId}/feeds/prediction [get]
func (h *PredictionHandler) Get(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	now := h.now().UTC()
	if raw := r.URL.Query().Get("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			problem.BadRequest("at must be a valid RFC3339 timestamp").Write(w)
			return
		}
		now = at.UTC()
	}

	result, err := h.service.Predict(r.Context(), babyID, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Baby not found").Write(w)
			return
		}
		problem.InternalError("Failed to predict next feed").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
