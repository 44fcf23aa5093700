package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

const (
	// MinGapMinutes and MaxGapMinutes bound a usable feed interval. Shorter
	// gaps are cluster feeds, longer ones usually a missed log.
	MinGapMinutes = 45
	MaxGapMinutes = 360

	// MaxFeedsForPrediction caps how far back the engine looks.
	MaxFeedsForPrediction = 14

	highConfidenceIntervals   = 7
	mediumConfidenceIntervals = 3
)

// PredictNextFeed estimates when the next feed is due from completed feeds.
// Logs of other types and feeds still in progress are ignored.
func PredictNextFeed(logs []domain.Log, dob *time.Time, now time.Time) domain.PredictionResult {
	params := FeedIntervalParams(dob, now)

	feeds := completedFeeds(logs)
	if len(feeds) == 0 {
		return domain.PredictionResult{Confidence: domain.ConfidenceLow}
	}

	// newest first
	sort.Slice(feeds, func(i, j int) bool {
		return startedBefore(feeds[j], feeds[i])
	})
	if len(feeds) > MaxFeedsForPrediction {
		feeds = feeds[:MaxFeedsForPrediction]
	}

	// The hunger clock starts when the feed ends.
	last := *feeds[0].EndedAt
	dominant := dominantFeedType(feeds)

	if len(feeds) < 2 {
		return fallbackPrediction(last, params, feedTypeOf(feeds[0]), 1)
	}

	subset := singleTypeSubset(feeds)
	sort.Slice(subset, func(i, j int) bool {
		return startedBefore(subset[i], subset[j])
	})

	gaps := validGaps(subset)
	if len(gaps) == 0 {
		return fallbackPrediction(last, params, dominant, len(subset))
	}

	avg := recencyWeightedAverage(gaps)
	avg = clamp(avg, float64(params.MinMinutes), float64(params.MaxMinutes))
	interval := int(math.Round(avg))

	next := last.Add(time.Duration(interval) * time.Minute)
	return domain.PredictionResult{
		NextFeedTime:      &next,
		IntervalMinutes:   &interval,
		Confidence:        confidenceFor(len(gaps)),
		DominantType:      dominant,
		IntervalCount:     len(gaps),
		FeedCountUsed:     len(subset),
		LastFeedTimestamp: &last,
	}
}

func fallbackPrediction(last time.Time, params AgeParams, dominant *domain.FeedType, used int) domain.PredictionResult {
	interval := params.DefaultMinutes
	next := last.Add(time.Duration(interval) * time.Minute)
	return domain.PredictionResult{
		NextFeedTime:      &next,
		IntervalMinutes:   &interval,
		Confidence:        domain.ConfidenceLow,
		DominantType:      dominant,
		IntervalCount:     0,
		FeedCountUsed:     used,
		LastFeedTimestamp: &last,
	}
}

// completedFeeds copies feed logs that have an end time.
func completedFeeds(logs []domain.Log) []domain.Log {
	out := make([]domain.Log, 0, len(logs))
	for _, l := range logs {
		if l.Type != domain.LogTypeFeed || l.EndedAt == nil {
			continue
		}
		out = append(out, l)
	}
	return out
}

func feedTypeOf(l domain.Log) *domain.FeedType {
	ft := l.FeedDetails().FeedType
	if ft == "" {
		return nil
	}
	return &ft
}

// dominantFeedType is the majority of nursing vs bottle, nil on a tie.
func dominantFeedType(feeds []domain.Log) *domain.FeedType {
	nursing, bottle := 0, 0
	for _, f := range feeds {
		switch f.FeedDetails().FeedType {
		case domain.FeedTypeNursing:
			nursing++
		case domain.FeedTypeBottle:
			bottle++
		}
	}
	var ft domain.FeedType
	switch {
	case nursing > bottle:
		ft = domain.FeedTypeNursing
	case bottle > nursing:
		ft = domain.FeedTypeBottle
	default:
		return nil
	}
	return &ft
}

// singleTypeSubset keeps only one feed type when the history is exclusively
// that type, so mixed patterns are never blended into one average.
func singleTypeSubset(feeds []domain.Log) []domain.Log {
	var nursing, bottle []domain.Log
	for _, f := range feeds {
		switch f.FeedDetails().FeedType {
		case domain.FeedTypeNursing:
			nursing = append(nursing, f)
		case domain.FeedTypeBottle:
			bottle = append(bottle, f)
		}
	}
	switch {
	case len(nursing) > 0 && len(bottle) == 0:
		return nursing
	case len(bottle) > 0 && len(nursing) == 0:
		return bottle
	}
	out := make([]domain.Log, len(feeds))
	copy(out, feeds)
	return out
}

// validGaps returns end-to-start gaps in minutes for feeds sorted ascending,
// dropping anything outside [MinGapMinutes, MaxGapMinutes].
func validGaps(feeds []domain.Log) []float64 {
	var gaps []float64
	for i := 1; i < len(feeds); i++ {
		prevEnd := feeds[i-1].StartedAt
		if feeds[i-1].EndedAt != nil {
			prevEnd = *feeds[i-1].EndedAt
		}
		gap := feeds[i].StartedAt.Sub(prevEnd).Minutes()
		if gap < MinGapMinutes || gap > MaxGapMinutes {
			continue
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// recencyWeightedAverage weights the 3 newest gaps 3x, the next 4 2x and the
// rest 1x. gaps must be oldest first.
func recencyWeightedAverage(gaps []float64) float64 {
	var sum, weights float64
	for k := 0; k < len(gaps); k++ {
		gap := gaps[len(gaps)-1-k]
		w := 1.0
		switch {
		case k < 3:
			w = 3
		case k < 7:
			w = 2
		}
		sum += gap * w
		weights += w
	}
	return sum / weights
}

func confidenceFor(intervals int) domain.Confidence {
	switch {
	case intervals >= highConfidenceIntervals:
		return domain.ConfidenceHigh
	case intervals >= mediumConfidenceIntervals:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
