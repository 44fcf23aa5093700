package analytics

import (
	"testing"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

func TestCountdownFor(t *testing.T) {
	now := at(0, 12, 0)

	tests := []struct {
		name     string
		next     *time.Time
		wantText string
		wantDue  bool
		wantMins *int
	}{
		{"no prediction", nil, "No feeds logged yet", false, nil},
		{"overdue", timePtr(now.Add(-10 * time.Minute)), "Due now", true, intPtr(0)},
		{"exactly due", timePtr(now), "Due now", true, intPtr(0)},
		{"minutes only", timePtr(now.Add(42 * time.Minute)), "in 42m", false, intPtr(42)},
		{"partial minute rounds up", timePtr(now.Add(90 * time.Second)), "in 2m", false, intPtr(2)},
		{"hours and minutes", timePtr(now.Add(2*time.Hour + 5*time.Minute)), "in 2h 5m", false, intPtr(125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountdownFor(domain.PredictionResult{NextFeedTime: tt.next}, now)
			if got.Label != tt.wantText {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantText)
			}
			if got.Due != tt.wantDue {
				t.Errorf("Due = %v, want %v", got.Due, tt.wantDue)
			}
			switch {
			case tt.wantMins == nil && got.MinutesRemaining != nil:
				t.Errorf("MinutesRemaining = %d, want nil", *got.MinutesRemaining)
			case tt.wantMins != nil && (got.MinutesRemaining == nil || *got.MinutesRemaining != *tt.wantMins):
				t.Errorf("MinutesRemaining = %v, want %d", got.MinutesRemaining, *tt.wantMins)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
