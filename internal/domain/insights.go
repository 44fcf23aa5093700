package domain

import "time"

// RhythmTier labels how regular feeding intervals were this week.
type RhythmTier string

const (
	RhythmExcellent RhythmTier = "excellent"
	RhythmGood      RhythmTier = "good"
	RhythmBuilding  RhythmTier = "building"
	RhythmIrregular RhythmTier = "irregular"
)

// RhythmScore scores the spread of feed-to-feed intervals.
// @Description Feeding rhythm score (0-100) from interval variability.
type RhythmScore struct {
	Score         int        `json:"score" example:"82"`
	Tier          RhythmTier `json:"tier" example:"excellent"`
	StdDevMinutes float64    `json:"std_dev_minutes" example:"18.4"`
	MeanMinutes   float64    `json:"mean_minutes" example:"172.0"`
	IntervalCount int        `json:"interval_count" example:"35"`
}

// SleepDebtStatus classifies actual sleep against the age target.
type SleepDebtStatus string

const (
	SleepDebtBehind  SleepDebtStatus = "debt"
	SleepDebtOnTrack SleepDebtStatus = "on_track"
	SleepDebtAhead   SleepDebtStatus = "ahead"
)

// SleepDebt compares logged sleep with the age-expected total.
// @Description Sleep debt over days with any sleep logged.
type SleepDebt struct {
	Status        SleepDebtStatus `json:"status" example:"debt"`
	TargetHours   float64         `json:"target_hours_per_day" example:"15.5"`
	DaysWithSleep int             `json:"days_with_sleep" example:"7"`
	ExpectedHours float64         `json:"expected_hours" example:"108.5"`
	ActualHours   float64         `json:"actual_hours" example:"98.0"`
	DiffHours     float64         `json:"diff_hours" example:"10.5"`
	Message       string          `json:"message" example:"10h 30m behind the age target this week"`
}

// NapArchitecture breaks sleep into naps and night sessions.
// @Description Nap vs night sleep structure.
type NapArchitecture struct {
	NapCount             int        `json:"nap_count"`
	NapHours             float64    `json:"nap_hours"`
	AvgNapMinutes        float64    `json:"avg_nap_minutes"`
	NapsPerDay           float64    `json:"naps_per_day"`
	NightCount           int        `json:"night_count"`
	NightHours           float64    `json:"night_hours"`
	AvgNightHours        float64    `json:"avg_night_hours"`
	LongestStretchHours  float64    `json:"longest_stretch_hours"`
	LongestStretchDay    string     `json:"longest_stretch_day,omitempty" example:"Tue"`
	LongestStretchStart  *time.Time `json:"longest_stretch_start,omitempty"`
	FewerNapsThanTypical bool       `json:"fewer_naps_than_typical"`
}

// ClusterEvent is a merged run of closely spaced feeds.
// @Description Cluster-feeding event.
type ClusterEvent struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	FeedCount       int       `json:"feed_count" example:"4"`
	DurationMinutes int       `json:"duration_minutes" example:"150"`
}

// HydrationStatus grades wet-diaper output.
type HydrationStatus string

const (
	HydrationGood    HydrationStatus = "good"
	HydrationWarn    HydrationStatus = "warn"
	HydrationConcern HydrationStatus = "concern"
)

// HydrationSignal flags days with too few wet diapers.
// @Description Hydration signal derived from wet diaper counts.
type HydrationSignal struct {
	Status     HydrationStatus `json:"status" example:"good"`
	LowWetDays []string        `json:"low_wet_days"`
	Message    string          `json:"message"`
}

// StoolPattern collects stool-related flags for the week.
// @Description Stool pattern flags.
type StoolPattern struct {
	MaxNoDirtyStreak        int       `json:"max_no_dirty_streak"`
	NoDirtyStreakFlag       bool      `json:"no_dirty_streak_flag"`
	CurrentDirtyTotal       int       `json:"current_dirty_total"`
	PreviousDirtyTotal      int       `json:"previous_dirty_total"`
	StoolFrequencyIncreased bool      `json:"stool_frequency_increased"`
	UnusualColors           []PooType `json:"unusual_colors"`
	UnusualColorFlag        bool      `json:"unusual_color_flag"`
}

// FlagCount is the number of raised stool flags.
func (s *StoolPattern) FlagCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, f := range []bool{s.NoDirtyStreakFlag, s.StoolFrequencyIncreased, s.UnusualColorFlag} {
		if f {
			n++
		}
	}
	return n
}

// DiaperHealthScore combines hydration, stool and volume signals.
// @Description Diaper health score (0-100) with label.
type DiaperHealthScore struct {
	Score           int     `json:"score" example:"95"`
	Label           string  `json:"label" example:"Healthy pattern"`
	AvgWetPerDay    float64 `json:"avg_wet_per_day" example:"6.4"`
	MinWetPerDay    int     `json:"min_wet_per_day" example:"6"`
	BelowAgeMinimum bool    `json:"below_age_minimum"`
}

// InsightTone drives how a card is presented.
type InsightTone string

const (
	TonePositive InsightTone = "positive"
	ToneNeutral  InsightTone = "neutral"
	ToneWarning  InsightTone = "warning"
)

// InsightCard is one presentable insight.
type InsightCard struct {
	Kind    string      `json:"kind" example:"sleep_debt"`
	Tone    InsightTone `json:"tone" example:"warning"`
	Title   string      `json:"title" example:"Sleep debt"`
	Message string      `json:"message"`
}

// WeeklyInsights holds every builder's output. Nil members mean "no data yet".
type WeeklyInsights struct {
	Rhythm    *RhythmScore       `json:"rhythm"`
	SleepDebt *SleepDebt         `json:"sleep_debt"`
	Naps      *NapArchitecture   `json:"naps"`
	Clusters  []ClusterEvent     `json:"clusters"`
	Hydration *HydrationSignal   `json:"hydration"`
	Stool     *StoolPattern      `json:"stool"`
	Diaper    *DiaperHealthScore `json:"diaper_health"`
	Cards     []InsightCard      `json:"cards"`
}

// WeeklyReport bundles stats and insights for one window.
// @Description Weekly statistics with derived insights.
type WeeklyReport struct {
	BabyID   string         `json:"baby_id"`
	FamilyID string         `json:"family_id"`
	BabyName string         `json:"baby_name"`
	Stats    WeeklyStats    `json:"stats"`
	Insights WeeklyInsights `json:"insights"`
}

// LLMWeeklyNarrative is the structured output of the narrative model.
// @Description LLM-generated weekly narrative.
type LLMWeeklyNarrative struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Suggestions  []string `json:"suggestions"`
}

// NarrativeResponse is the response for the weekly insights endpoint.
// @Description Weekly report plus LLM narrative.
type NarrativeResponse struct {
	Report    WeeklyReport       `json:"report"`
	Narrative LLMWeeklyNarrative `json:"narrative"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
