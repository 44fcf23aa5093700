package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	boom := errors.New("connection reset")
	foreignKey := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"wrapped record not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_baby_client_request"}, domain.ErrConflict},
		{"wrapped unique violation", fmt.Errorf("insert log: %w", &pgconn.PgError{Code: "23505"}), domain.ErrConflict},
		{"foreign key violation passes through", foreignKey, foreignKey},
		{"unrelated error", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("translateError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if isUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
	if isUniqueViolation(errors.New("23505")) {
		t.Error("plain error mentioning the code is not a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("tx: %w", &pgconn.PgError{Code: uniqueViolation})) {
		t.Error("wrapped 23505 should be a unique violation")
	}
}
