package domain

import (
	"time"

	"github.com/google/uuid"
)

// Baby is the subject every log belongs to. Only DateOfBirth and Timezone
// feed into the analytics; the rest is carried for the API.
type Baby struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FamilyID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"family_id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Timezone    string     `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Baby) TableName() string {
	return "babies"
}

// Location resolves the baby's timezone, falling back to UTC.
func (b *Baby) Location() *time.Location {
	if b == nil || b.Timezone == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(b.Timezone); err == nil {
		return loc
	}
	return time.UTC
}

// DOB returns the date of birth or nil for a nil baby.
func (b *Baby) DOB() *time.Time {
	if b == nil {
		return nil
	}
	return b.DateOfBirth
}

// AgeInDays returns whole days elapsed since dob. ok is false when dob is unknown.
func AgeInDays(dob *time.Time, now time.Time) (days int, ok bool) {
	if dob == nil {
		return 0, false
	}
	d := int(now.Sub(*dob).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return d, true
}

// AgeInMonths approximates months as 30.44-day periods.
func AgeInMonths(dob *time.Time, now time.Time) (months float64, ok bool) {
	days, ok := AgeInDays(dob, now)
	if !ok {
		return 0, false
	}
	return float64(days) / 30.44, true
}

// CreateBabyRequest is the request body for registering a baby.
// @Description Request payload for registering a baby profile.
type CreateBabyRequest struct {
	// Family the baby belongs to
	FamilyID uuid.UUID `json:"family_id" validate:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Display name
	Name string `json:"name" validate:"required,max=100" example:"Mila"`
	// Date of birth (YYYY-MM-DD)
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
	// IANA timezone used for calendar-day bucketing
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// BabyResponse is the response body for baby endpoints.
type BabyResponse struct {
	ID          uuid.UUID `json:"id"`
	FamilyID    uuid.UUID `json:"family_id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Timezone    string    `json:"timezone"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Baby) ToResponse() BabyResponse {
	resp := BabyResponse{
		ID:        b.ID,
		FamilyID:  b.FamilyID,
		Name:      b.Name,
		Timezone:  b.Timezone,
		CreatedAt: b.CreatedAt,
	}
	if b.DateOfBirth != nil {
		resp.DateOfBirth = b.DateOfBirth.Format("2006-01-02")
	}
	return resp
}
