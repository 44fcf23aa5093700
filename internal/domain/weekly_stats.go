package domain

import "time"

// DailyStats holds per-type counts and sums for one local calendar day.
// wet+dirty+both always equals DiaperCount; nap+night equals SleepHours up to rounding.
type DailyStats struct {
	// Local date (YYYY-MM-DD)
	Date string `json:"date" example:"2024-05-01"`
	// Short weekday name
	DayName            string  `json:"day_name" example:"Wed"`
	FeedCount          int     `json:"feed_count"`
	NursingCount       int     `json:"nursing_count"`
	BottleCount        int     `json:"bottle_count"`
	NursingDurationMin float64 `json:"nursing_duration_min"`
	BottleTotalMl      float64 `json:"bottle_total_ml"`
	SleepHours         float64 `json:"sleep_hours"`
	NapHours           float64 `json:"nap_hours"`
	NightHours         float64 `json:"night_hours"`
	NapCount           int     `json:"nap_count"`
	DiaperCount        int     `json:"diaper_count"`
	WetCount           int     `json:"wet_count"`
	DirtyCount         int     `json:"dirty_count"`
	BothCount          int     `json:"both_count"`
	// Stool colours logged that day
	PooTypes []PooType `json:"poo_types,omitempty"`
}

// WeeklyTotals sums DailyStats over the 7 buckets.
type WeeklyTotals struct {
	Feeds              int     `json:"feeds"`
	NursingCount       int     `json:"nursing_count"`
	BottleCount        int     `json:"bottle_count"`
	NursingDurationMin float64 `json:"nursing_duration_min"`
	BottleTotalMl      float64 `json:"bottle_total_ml"`
	SleepHours         float64 `json:"sleep_hours"`
	NapHours           float64 `json:"nap_hours"`
	NightHours         float64 `json:"night_hours"`
	Diapers            int     `json:"diapers"`
	Wet                int     `json:"wet"`
	Dirty              int     `json:"dirty"`
	Both               int     `json:"both"`
}

// DailyAverages is WeeklyTotals divided by 7.
type DailyAverages struct {
	Feeds              float64 `json:"feeds"`
	NursingDurationMin float64 `json:"nursing_duration_min"`
	BottleTotalMl      float64 `json:"bottle_total_ml"`
	SleepHours         float64 `json:"sleep_hours"`
	NapHours           float64 `json:"nap_hours"`
	NightHours         float64 `json:"night_hours"`
	Diapers            float64 `json:"diapers"`
	Wet                float64 `json:"wet"`
	Dirty              float64 `json:"dirty"`
}

// WeekOverWeek holds percent deltas against the previous 7 days.
// A nil value means the previous week had nothing to compare against.
type WeekOverWeek struct {
	Feeds      *int `json:"feeds"`
	BottleMl   *int `json:"bottle_ml"`
	NursingMin *int `json:"nursing_min"`
	SleepHours *int `json:"sleep_hours"`
	Diapers    *int `json:"diapers"`
	Wet        *int `json:"wet"`
	Dirty      *int `json:"dirty"`
}

type FeedInsights struct {
	PeakHour       *int    `json:"peak_hour"`
	PeakDayIndex   *int    `json:"peak_day_index"`
	NursingPercent int     `json:"nursing_percent"`
	BottlePercent  int     `json:"bottle_percent"`
	NightFeedCount int     `json:"night_feed_count"`
	AvgBottleMl    float64 `json:"avg_bottle_ml"`
}

type SleepInsights struct {
	AvgDailyHours       float64 `json:"avg_daily_hours"`
	NapPercent          int     `json:"nap_percent"`
	NightPercent        int     `json:"night_percent"`
	RecommendedMinHours float64 `json:"recommended_min_hours"`
	RecommendedMaxHours float64 `json:"recommended_max_hours"`
	QualityScore        int     `json:"quality_score"`
	LongestStretchHours float64 `json:"longest_stretch_hours"`
}

type DiaperInsights struct {
	PeakHour     *int    `json:"peak_hour"`
	PeakDayIndex *int    `json:"peak_day_index"`
	WetPercent   int     `json:"wet_percent"`
	DirtyPercent int     `json:"dirty_percent"`
	BothPercent  int     `json:"both_percent"`
	AvgPerDay    float64 `json:"avg_per_day"`
}

// WeeklyStats is the aggregator output for one 7-day window.
// @Description Weekly aggregate statistics.
type WeeklyStats struct {
	RangeStart     time.Time      `json:"range_start"`
	RangeEnd       time.Time      `json:"range_end"`
	Days           []DailyStats   `json:"days"`
	Totals         WeeklyTotals   `json:"totals"`
	Averages       DailyAverages  `json:"averages"`
	PreviousTotals WeeklyTotals   `json:"previous_totals"`
	WeekOverWeek   WeekOverWeek   `json:"week_over_week"`
	FeedInsights   FeedInsights   `json:"feed_insights"`
	SleepInsights  SleepInsights  `json:"sleep_insights"`
	DiaperInsights DiaperInsights `json:"diaper_insights"`
}
