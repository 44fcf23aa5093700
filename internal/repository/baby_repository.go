package repository

import (
	"context"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BabyRepository interface {
	Create(ctx context.Context, baby *domain.Baby) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type babyRepository struct {
	db *gorm.DB
}

func NewBabyRepository(db *gorm.DB) BabyRepository {
	return &babyRepository{db: db}
}

func (r *babyRepository) Create(ctx context.Context, baby *domain.Baby) error {
	return translateError(r.db.WithContext(ctx).Create(baby).Error)
}

func (r *babyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Baby, error) {
	var baby domain.Baby
	if err := r.db.WithContext(ctx).First(&baby, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &baby, nil
}

func (r *babyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Baby{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
