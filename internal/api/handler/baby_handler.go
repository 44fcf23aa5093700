package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/baby-journal/internal/api/validation"
	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/blaisecz/baby-journal/pkg/problem"
)

// @title Baby Journal API
// @version 1.0
// @description Caregiving journal with next-feed prediction and weekly insights
// @BasePath /v1

type BabyHandler struct {
	service service.BabyService
}

func NewBabyHandler(service service.BabyService) *BabyHandler {
	return &BabyHandler{service: service}
}

// Create handles POST /v1/babies
// @Summary Register a baby
// @Description Create a baby profile. The timezone drives calendar-day bucketing and the date of birth the age-based targets.
// @Tags babies
// @Accept json
// @Produce json
// @Param request body domain.CreateBabyRequest true "Baby profile"
// @Success 201 {object} domain.BabyResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies [post]
func (h *BabyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBabyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	baby, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest(err.Error()).Write(w)
			return
		}
		problem.InternalError("Failed to create baby").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, baby.ToResponse())
}

// GetByID handles GET /v1/babies/{babyId}
// @Summary Get baby by ID
// @Tags babies
// @Produce json
// @Param babyId path string true "Baby ID" format(uuid)
// @Success 200 {object} domain.BabyResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /babies/{babyId} [get]
func (h *BabyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	babyID, ok := parseBabyID(w, r)
	if !ok {
		return
	}

	baby, err := h.service.GetByID(r.Context(), babyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Baby not found").Write(w)
			return
		}
		problem.InternalError("Failed to get baby").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, baby.ToResponse())
}
