package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/repository"
	"github.com/google/uuid"
)

type BabyService interface {
	Create(ctx context.Context, req *domain.CreateBabyRequest) (*domain.Baby, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error)
}

type babyService struct {
	repo repository.BabyRepository
}

func NewBabyService(repo repository.BabyRepository) BabyService {
	return &babyService{repo: repo}
}

func (s *babyService) Create(ctx context.Context, req *domain.CreateBabyRequest) (*domain.Baby, error) {
	baby := &domain.Baby{
		ID:       uuid.New(),
		FamilyID: req.FamilyID,
		Name:     req.Name,
		Timezone: req.Timezone,
	}

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth: %v", domain.ErrInvalidInput, err)
		}
		if dob.After(time.Now().UTC()) {
			return nil, fmt.Errorf("%w: date_of_birth is in the future", domain.ErrInvalidInput)
		}
		baby.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, baby); err != nil {
		return nil, err
	}

	return baby, nil
}

func (s *babyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error) {
	return s.repo.GetByID(ctx, id)
}
