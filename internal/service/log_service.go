package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/blaisecz/baby-journal/internal/repository"
	"github.com/blaisecz/baby-journal/pkg/pagination"
	"github.com/google/uuid"
)

// ExportHeader is the first row of a CSV export.
var ExportHeader = []string{
	"log_id",
	"baby_id",
	"type",
	"started_at_utc",
	"ended_at_utc",
	"duration_seconds",
	"notes",
	"metadata_json",
	"logged_by",
	"created_at_utc",
}

type LogService interface {
	// Create records an event. The bool is true when an earlier request with
	// the same client_request_id is returned instead.
	Create(ctx context.Context, babyID uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error)
	Update(ctx context.Context, babyID, logID uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error)
	Delete(ctx context.Context, babyID, logID uuid.UUID) error
	List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) (*domain.LogListResponse, error)
	// ExportCSV writes every log with from <= started_at < to.
	ExportCSV(ctx context.Context, babyID uuid.UUID, from, to time.Time, w io.Writer) error
}

type logService struct {
	repo     repository.LogRepository
	babyRepo repository.BabyRepository
}

func NewLogService(repo repository.LogRepository, babyRepo repository.BabyRepository) LogService {
	return &logService{
		repo:     repo,
		babyRepo: babyRepo,
	}
}

func (s *logService) Create(ctx context.Context, babyID uuid.UUID, req *domain.CreateLogRequest) (*domain.Log, bool, error) {
	baby, err := s.babyRepo.GetByID(ctx, babyID)
	if err != nil {
		return nil, false, err
	}

	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, babyID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	if req.EndedAt != nil && req.EndedAt.Before(req.StartedAt) {
		return nil, false, fmt.Errorf("%w: ended_at is before started_at", domain.ErrInvalidInput)
	}

	metadata, err := domain.EncodeMetadata(req.Type, req.Metadata)
	if err != nil {
		return nil, false, err
	}

	log := &domain.Log{
		BabyID:          babyID,
		FamilyID:        baby.FamilyID,
		Type:            req.Type,
		StartedAt:       req.StartedAt.UTC(),
		EndedAt:         utcPtr(req.EndedAt),
		DurationSeconds: req.DurationSeconds,
		Notes:           req.Notes,
		Metadata:        metadata,
		ClientRequestID: req.ClientRequestID,
	}
	if req.LoggedBy != nil {
		log.LoggedBy = *req.LoggedBy
	}

	if err := s.repo.Create(ctx, log); err != nil {
		// A concurrent retry won the unique index; hand back its row.
		if errors.Is(err, domain.ErrConflict) && req.ClientRequestID != nil {
			existing, getErr := s.repo.GetByClientRequestID(ctx, babyID, *req.ClientRequestID)
			if getErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}

	return log, false, nil
}

func (s *logService) Update(ctx context.Context, babyID, logID uuid.UUID, req *domain.UpdateLogRequest) (*domain.Log, error) {
	log, err := s.ownedLog(ctx, babyID, logID)
	if err != nil {
		return nil, err
	}

	if req.StartedAt != nil {
		log.StartedAt = req.StartedAt.UTC()
	}
	switch {
	case req.Clears("ended_at"):
		log.EndedAt = nil
	case req.EndedAt != nil:
		log.EndedAt = utcPtr(req.EndedAt)
	}
	switch {
	case req.Clears("duration_seconds"):
		log.DurationSeconds = nil
	case req.DurationSeconds != nil:
		log.DurationSeconds = req.DurationSeconds
	}
	switch {
	case req.Clears("notes"):
		log.Notes = nil
	case req.Notes != nil:
		log.Notes = req.Notes
	}
	if req.Metadata != nil {
		metadata, err := domain.EncodeMetadata(log.Type, req.Metadata)
		if err != nil {
			return nil, err
		}
		log.Metadata = metadata
	}

	if log.EndedAt != nil && log.EndedAt.Before(log.StartedAt) {
		return nil, fmt.Errorf("%w: ended_at is before started_at", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *logService) Delete(ctx context.Context, babyID, logID uuid.UUID) error {
	if _, err := s.ownedLog(ctx, babyID, logID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, logID)
}

// ownedLog loads a log and hides logs that belong to another baby.
func (s *logService) ownedLog(ctx context.Context, babyID, logID uuid.UUID) (*domain.Log, error) {
	exists, err := s.babyRepo.Exists(ctx, babyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	log, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.BabyID != babyID {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

func (s *logService) List(ctx context.Context, babyID uuid.UUID, filter domain.LogFilter) (*domain.LogListResponse, error) {
	exists, err := s.babyRepo.Exists(ctx, babyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, babyID, filter)
	if err != nil {
		return nil, err
	}

	logs, hasMore := pagination.Trim(logs, filter.Limit)

	response := &domain.LogListResponse{
		Data: make([]domain.LogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range logs {
		response.Data[i] = logs[i].ToResponse()
	}

	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			StartedAt: last.StartedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *logService) ExportCSV(ctx context.Context, babyID uuid.UUID, from, to time.Time, w io.Writer) error {
	exists, err := s.babyRepo.Exists(ctx, babyID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	logs, err := s.repo.ListByRange(ctx, babyID, from, to)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range logs {
		if err := writer.Write(exportRow(&logs[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func exportRow(l *domain.Log) []string {
	row := []string{
		l.ID.String(),
		l.BabyID.String(),
		string(l.Type),
		l.StartedAt.UTC().Format(time.RFC3339),
		"",
		"",
		"",
		string(l.Metadata),
		"",
		l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.EndedAt != nil {
		row[4] = l.EndedAt.UTC().Format(time.RFC3339)
	}
	if l.DurationSeconds != nil {
		row[5] = strconv.Itoa(*l.DurationSeconds)
	}
	if l.Notes != nil {
		row[6] = *l.Notes
	}
	if l.LoggedBy != uuid.Nil {
		row[8] = l.LoggedBy.String()
	}
	return row
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
