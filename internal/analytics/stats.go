package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentChange returns round((cur-prev)/prev*100), or nil when prev is zero.
func percentChange(cur, prev float64) *int {
	if prev == 0 {
		return nil
	}
	v := int(math.Round((cur - prev) / prev * 100))
	return &v
}

// percentOf returns round(part/whole*100), zero when whole is zero.
func percentOf(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

// peakIndex returns the index of the strict maximum, first one on ties.
// All-zero counts have no peak.
func peakIndex(counts []int) *int {
	best := -1
	for i, c := range counts {
		if c <= 0 {
			continue
		}
		if best < 0 || c > counts[best] {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatHoursMinutes renders fractional hours as "3h 5m".
func formatHoursMinutes(hours float64) string {
	total := int(math.Round(math.Abs(hours) * 60))
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// startedBefore orders logs by StartedAt, breaking ties by ID so results do
// not depend on input order.
func startedBefore(a, b domain.Log) bool {
	if !a.StartedAt.Equal(b.StartedAt) {
		return a.StartedAt.Before(b.StartedAt)
	}
	return a.ID.String() < b.ID.String()
}

// sortedCopy returns logs ordered by startedBefore without touching the input.
func sortedCopy(logs []domain.Log) []domain.Log {
	out := make([]domain.Log, len(logs))
	copy(out, logs)
	sort.Slice(out, func(i, j int) bool { return startedBefore(out[i], out[j]) })
	return out
}
