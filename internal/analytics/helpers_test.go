package analytics

import (
	"fmt"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// day is a fixed Monday used as the base for most fixtures.
var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(dayOffset, hour, minute int) time.Time {
	return day.AddDate(0, 0, dayOffset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func timePtr(t time.Time) *time.Time { return &t }

func feed(start, end time.Time, ft domain.FeedType) domain.Log {
	return domain.Log{
		ID:        uuid.New(),
		Type:      domain.LogTypeFeed,
		StartedAt: start,
		EndedAt:   &end,
		Metadata:  datatypes.JSON(fmt.Sprintf(`{"feed_type":%q}`, ft)),
	}
}

func bottle(start time.Time, ml float64) domain.Log {
	end := start.Add(15 * time.Minute)
	return domain.Log{
		ID:        uuid.New(),
		Type:      domain.LogTypeFeed,
		StartedAt: start,
		EndedAt:   &end,
		Metadata:  datatypes.JSON(fmt.Sprintf(`{"feed_type":"bottle","amount_ml":%g}`, ml)),
	}
}

func sleep(start time.Time, d time.Duration) domain.Log {
	end := start.Add(d)
	return domain.Log{
		ID:        uuid.New(),
		Type:      domain.LogTypeSleep,
		StartedAt: start,
		EndedAt:   &end,
	}
}

func diaper(start time.Time, dt domain.DiaperType, poo domain.PooType) domain.Log {
	meta := fmt.Sprintf(`{"diaper_type":%q}`, dt)
	if poo != "" {
		meta = fmt.Sprintf(`{"diaper_type":%q,"poo_type":%q}`, dt, poo)
	}
	return domain.Log{
		ID:        uuid.New(),
		Type:      domain.LogTypeDiaper,
		StartedAt: start,
		Metadata:  datatypes.JSON(meta),
	}
}

func reversed(logs []domain.Log) []domain.Log {
	out := make([]domain.Log, len(logs))
	for i, l := range logs {
		out[len(logs)-1-i] = l
	}
	return out
}

// weekEnd is the last day of the week that starts on day.
var weekEnd = day.AddDate(0, 0, DaysPerWeek-1)
