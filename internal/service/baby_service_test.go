package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
)

func TestBabyService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.CreateBabyRequest
		wantErr error
		wantDOB string
	}{
		{
			name: "with date of birth",
			req: &domain.CreateBabyRequest{
				FamilyID:    uuid.New(),
				Name:        "Mila",
				DateOfBirth: strPtr("2024-03-01"),
				Timezone:    "Europe/Prague",
			},
			wantDOB: "2024-03-01",
		},
		{
			name: "without date of birth",
			req: &domain.CreateBabyRequest{
				FamilyID: uuid.New(),
				Name:     "Leo",
				Timezone: "UTC",
			},
		},
		{
			name: "malformed date",
			req: &domain.CreateBabyRequest{
				FamilyID:    uuid.New(),
				Name:        "Leo",
				DateOfBirth: strPtr("01/03/2024"),
				Timezone:    "UTC",
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "future date",
			req: &domain.CreateBabyRequest{
				FamilyID:    uuid.New(),
				Name:        "Leo",
				DateOfBirth: strPtr("2999-01-01"),
				Timezone:    "UTC",
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockBabyRepository()
			svc := NewBabyService(repo)

			baby, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if _, ok := repo.babies[baby.ID]; !ok {
				t.Error("baby was not stored")
			}
			got := baby.ToResponse().DateOfBirth
			if got != tt.wantDOB {
				t.Errorf("DateOfBirth = %q, want %q", got, tt.wantDOB)
			}
		})
	}
}

func TestBabyService_GetByID(t *testing.T) {
	repo := NewMockBabyRepository()
	baby := newTestBaby(repo, nil, "UTC")
	svc := NewBabyService(repo)

	got, err := svc.GetByID(context.Background(), baby.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Mila" {
		t.Errorf("Name = %q, want Mila", got.Name)
	}

	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrNotFound", err)
	}
}
