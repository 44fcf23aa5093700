package domain

import "time"

// Confidence is the qualitative reliability of a next-feed prediction.
// @Description Prediction confidence tier based on the number of valid intervals.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank orders tiers so low < medium < high.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	}
	return 0
}

// PredictionResult is the next-feed estimate derived from recent feeds.
// @Description Next-feed prediction.
type PredictionResult struct {
	// Predicted time of the next feed (null without feed history)
	NextFeedTime *time.Time `json:"next_feed_time"`
	// Recency-weighted interval in minutes, clamped to the age window
	IntervalMinutes *int `json:"interval_minutes" example:"165"`
	// Confidence tier
	Confidence Confidence `json:"confidence" example:"medium" enums:"high,medium,low"`
	// Majority feed type among recent feeds (null on a tie)
	DominantType *FeedType `json:"dominant_type" example:"bottle"`
	// Number of valid intervals used
	IntervalCount int `json:"interval_count" example:"5"`
	// Number of feeds the intervals were drawn from
	FeedCountUsed int `json:"feed_count_used" example:"6"`
	// End of the most recent feed (start when no end was recorded)
	LastFeedTimestamp *time.Time `json:"last_feed_timestamp"`
}

// Countdown is the UI-facing view of a prediction at a given instant.
type Countdown struct {
	Label            string `json:"label" example:"in 1h 5m"`
	Due              bool   `json:"due"`
	MinutesRemaining *int   `json:"minutes_remaining"`
}

// PredictionResponse is the response for the prediction endpoint.
// @Description Next-feed prediction with countdown.
type PredictionResponse struct {
	Prediction PredictionResult `json:"prediction"`
	Countdown  Countdown        `json:"countdown"`
	// Time the countdown was evaluated at
	EvaluatedAt time.Time `json:"evaluated_at"`
}
