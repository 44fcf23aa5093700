package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogRepository interface {
	Create(ctx context.Context, log *domain.Log) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error)
	Update(ctx context.Context, log *domain.Log) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) ([]domain.Log, error)
	// ListByRange returns every log for the baby with from <= started_at < to,
	// oldest first. No types means all types.
	ListByRange(ctx context.Context, babyID uuid.UUID, from, to time.Time, types ...domain.LogType) ([]domain.Log, error)
	GetByClientRequestID(ctx context.Context, babyID uuid.UUID, clientRequestID string) (*domain.Log, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *domain.Log) error {
	return translateError(r.db.WithContext(ctx).Create(log).Error)
}

func (r *logRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error) {
	var log domain.Log
	if err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &log, nil
}

func (r *logRepository) Update(ctx context.Context, log *domain.Log) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Log{}).
		Where("id = ?", log.ID).
		Select("started_at", "ended_at", "duration_seconds", "notes", "metadata").
		Updates(log)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *logRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Log{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *logRepository) List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) ([]domain.Log, error) {
	query := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("started_at DESC, id DESC")

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.From != nil {
		query = query.Where("started_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("started_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: strictly older, or same instant with a lower id
			query = query.Where(
				"(started_at < ?) OR (started_at = ? AND id < ?)",
				cursor.StartedAt, cursor.StartedAt, cursor.ID,
			)
		}
	}

	// One extra row tells the caller whether there is another page.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.Log
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) ListByRange(ctx context.Context, babyID uuid.UUID, from, to time.Time, types ...domain.LogType) ([]domain.Log, error) {
	query := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Where("started_at >= ? AND started_at < ?", from, to).
		Order("started_at ASC, id ASC")
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}

	var logs []domain.Log
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) GetByClientRequestID(ctx context.Context, babyID uuid.UUID, clientRequestID string) (*domain.Log, error) {
	var log domain.Log
	err := r.db.WithContext(ctx).
		Where("baby_id = ? AND client_request_id = ?", babyID, clientRequestID).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // not found is not an error for idempotency checks
		}
		return nil, err
	}
	return &log, nil
}
