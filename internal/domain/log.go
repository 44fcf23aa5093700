package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogType is the closed set of caregiving events a log can record.
// @Description Type of caregiving event.
type LogType string

const (
	LogTypeFeed      LogType = "feed"
	LogTypeSleep     LogType = "sleep"
	LogTypeDiaper    LogType = "diaper"
	LogTypeHealth    LogType = "health"
	LogTypeMilestone LogType = "milestone"
)

// Valid reports whether t is one of the known log types.
func (t LogType) Valid() bool {
	switch t {
	case LogTypeFeed, LogTypeSleep, LogTypeDiaper, LogTypeHealth, LogTypeMilestone:
		return true
	}
	return false
}

// Log is one recorded caregiving event. StartedAt is the ordering key;
// DurationSeconds, when set, wins over EndedAt for duration.
type Log struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BabyID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_logs_baby_started" json:"baby_id"`
	FamilyID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"family_id"`
	LoggedBy        uuid.UUID      `gorm:"type:uuid" json:"logged_by"`
	Type            LogType        `gorm:"type:varchar(16);not null;index" json:"type"`
	StartedAt       time.Time      `gorm:"not null;index:idx_logs_baby_started,sort:desc" json:"started_at"`
	EndedAt         *time.Time     `json:"ended_at,omitempty"`
	DurationSeconds *int           `json:"duration_seconds,omitempty"`
	Notes           *string        `gorm:"type:text" json:"notes,omitempty"`
	Metadata        datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	ClientRequestID *string        `gorm:"type:varchar(255);uniqueIndex:idx_baby_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Baby Baby `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Log) TableName() string {
	return "logs"
}

// Duration returns the event length, preferring DurationSeconds over the
// EndedAt-StartedAt span. Open or malformed events report zero.
func (l *Log) Duration() time.Duration {
	if l.DurationSeconds != nil {
		if *l.DurationSeconds < 0 {
			return 0
		}
		return time.Duration(*l.DurationSeconds) * time.Second
	}
	if l.EndedAt != nil && l.EndedAt.After(l.StartedAt) {
		return l.EndedAt.Sub(l.StartedAt)
	}
	return 0
}

// CreateLogRequest is the request body for recording an event.
// @Description Request payload for recording a caregiving event.
type CreateLogRequest struct {
	// Event type
	Type LogType `json:"type" validate:"required,oneof=feed sleep diaper health milestone" example:"feed" enums:"feed,sleep,diaper,health,milestone"`
	// Event start (RFC3339)
	StartedAt time.Time `json:"started_at" validate:"required" example:"2024-05-01T09:00:00Z"`
	// Event end (RFC3339), only for timed events
	EndedAt *time.Time `json:"ended_at,omitempty" validate:"omitempty,gtfield=StartedAt" example:"2024-05-01T09:20:00Z"`
	// Duration in seconds; authoritative when present
	DurationSeconds *int `json:"duration_seconds,omitempty" validate:"omitempty,min=0" example:"1200"`
	// Caregiver who recorded the event
	LoggedBy *uuid.UUID `json:"logged_by,omitempty"`
	// Free text notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	// Type-dependent metadata (feed_type, amount_ml, diaper_type, poo_type, ...)
	Metadata map[string]any `json:"metadata,omitempty"`
	// Optional client-generated ID for idempotent requests
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateLogRequest is the request body for editing an event. Omitted fields
// are left unchanged; an explicit null clears ended_at, duration_seconds or notes.
// @Description Partial update. Send null for ended_at, duration_seconds or notes to clear them.
type UpdateLogRequest struct {
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	EndedAt         *time.Time     `json:"ended_at,omitempty"`
	DurationSeconds *int           `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	Notes           *string        `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Metadata        map[string]any `json:"metadata,omitempty"`

	// Clear lists the fields the body set to null.
	Clear []string `json:"-" swaggerignore:"true"`
}

// clearableLogFields are the optional columns a PATCH may null out.
var clearableLogFields = []string{"ended_at", "duration_seconds", "notes"}

// UnmarshalJSON decodes the body and records which clearable fields were
// explicitly null, since a nil pointer alone cannot tell null from absent.
func (r *UpdateLogRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateLogRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Clear = nil
	for _, field := range clearableLogFields {
		if v, ok := raw[field]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			p.Clear = append(p.Clear, field)
		}
	}

	*r = UpdateLogRequest(p)
	return nil
}

// Clears reports whether the request asks for field to be set to null.
func (r *UpdateLogRequest) Clears(field string) bool {
	for _, f := range r.Clear {
		if f == field {
			return true
		}
	}
	return false
}

// LogResponse is the response body for log endpoints.
// @Description Caregiving event record.
type LogResponse struct {
	ID              uuid.UUID      `json:"id"`
	BabyID          uuid.UUID      `json:"baby_id"`
	FamilyID        uuid.UUID      `json:"family_id"`
	LoggedBy        uuid.UUID      `json:"logged_by"`
	Type            LogType        `json:"type"`
	StartedAt       time.Time      `json:"started_at"`
	EndedAt         *time.Time     `json:"ended_at,omitempty"`
	DurationSeconds *int           `json:"duration_seconds,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
	Metadata        datatypes.JSON `json:"metadata,omitempty" swaggertype:"object"`
	ClientRequestID *string        `json:"client_request_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (l *Log) ToResponse() LogResponse {
	return LogResponse{
		ID:              l.ID,
		BabyID:          l.BabyID,
		FamilyID:        l.FamilyID,
		LoggedBy:        l.LoggedBy,
		Type:            l.Type,
		StartedAt:       l.StartedAt,
		EndedAt:         l.EndedAt,
		DurationSeconds: l.DurationSeconds,
		Notes:           l.Notes,
		Metadata:        l.Metadata,
		ClientRequestID: l.ClientRequestID,
		CreatedAt:       l.CreatedAt,
	}
}

// LogListResponse is the response body for listing logs.
// @Description Paginated list of caregiving events.
type LogListResponse struct {
	Data       []LogResponse      `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// LogFilter contains filter parameters for listing logs.
type LogFilter struct {
	Type   *LogType
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
