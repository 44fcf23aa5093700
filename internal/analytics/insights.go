package analytics

import (
	"fmt"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// wowNoticeablePercent is the week-over-week change at which sleep and
// diaper cards call out a trend. Feed cards report any change.
const wowNoticeablePercent = 20

// InsightInput is everything the builders need for one week.
type InsightInput struct {
	Stats       domain.WeeklyStats
	Logs        []domain.Log // current window
	DateOfBirth *time.Time
	Location    *time.Location
	Now         time.Time
}

// BuildWeeklyInsights runs every builder and turns the results into cards.
func BuildWeeklyInsights(in InsightInput) domain.WeeklyInsights {
	feedLogs := logsInWindow(in.Logs, in.Stats, in.Location)

	wi := domain.WeeklyInsights{
		Rhythm:    FeedingRhythm(feedLogs),
		SleepDebt: SleepDebt(in.Stats, in.DateOfBirth, in.Now),
		Naps:      NapArchitecture(in.Logs, in.Stats, in.DateOfBirth, in.Now, in.Location),
		Clusters:  DetectClusterFeeds(feedLogs),
		Hydration: Hydration(in.Stats),
		Stool:     StoolPattern(in.Stats),
	}
	wi.Diaper = DiaperHealth(in.Stats, wi.Hydration, wi.Stool, in.DateOfBirth, in.Now)
	wi.Cards = buildCards(in.Stats, wi)
	return wi
}

// logsInWindow keeps logs whose local start date falls inside the stats window.
func logsInWindow(logs []domain.Log, stats domain.WeeklyStats, loc *time.Location) []domain.Log {
	if loc == nil {
		loc = time.UTC
	}
	start := stats.RangeStart.In(loc)
	end := start.AddDate(0, 0, DaysPerWeek)
	out := make([]domain.Log, 0, len(logs))
	for _, l := range logs {
		local := l.StartedAt.In(loc)
		if local.Before(start) || !local.Before(end) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func buildCards(stats domain.WeeklyStats, wi domain.WeeklyInsights) []domain.InsightCard {
	cards := []domain.InsightCard{}
	add := func(kind string, tone domain.InsightTone, title, msg string) {
		cards = append(cards, domain.InsightCard{Kind: kind, Tone: tone, Title: title, Message: msg})
	}

	if r := wi.Rhythm; r != nil {
		tone := domain.ToneNeutral
		switch r.Tier {
		case domain.RhythmExcellent, domain.RhythmGood:
			tone = domain.TonePositive
		case domain.RhythmIrregular:
			tone = domain.ToneWarning
		}
		add("feeding_rhythm", tone, "Feeding rhythm",
			fmt.Sprintf("Rhythm score %d (%s). Feeds came about every %s, give or take %s.",
				r.Score, r.Tier, formatHoursMinutes(r.MeanMinutes/60), formatHoursMinutes(r.StdDevMinutes/60)))
	}

	if len(wi.Clusters) > 0 {
		longest := wi.Clusters[0]
		for _, c := range wi.Clusters[1:] {
			if c.FeedCount > longest.FeedCount {
				longest = c
			}
		}
		add("cluster_feeding", domain.ToneNeutral, "Cluster feeding",
			fmt.Sprintf("%d cluster-feeding stretch(es) this week, up to %d feeds in %s. This is a normal pattern.",
				len(wi.Clusters), longest.FeedCount, formatHoursMinutes(float64(longest.DurationMinutes)/60)))
	}

	if ch := stats.WeekOverWeek.Feeds; ch != nil {
		add("feeds_trend", domain.ToneNeutral, "Feeds vs last week",
			fmt.Sprintf("%d feeds this week, %s.", stats.Totals.Feeds, describeChange(*ch)))
	}

	if sd := wi.SleepDebt; sd != nil {
		tone := domain.TonePositive
		if sd.Status == domain.SleepDebtBehind {
			tone = domain.ToneWarning
		}
		add("sleep_debt", tone, "Sleep debt", sd.Message)
	}

	if ch := stats.WeekOverWeek.SleepHours; ch != nil && abs(*ch) >= wowNoticeablePercent {
		tone := domain.TonePositive
		if *ch < 0 {
			tone = domain.ToneWarning
		}
		add("sleep_trend", tone, "Sleep vs last week",
			fmt.Sprintf("%.1fh of sleep logged, %s.", stats.Totals.SleepHours, describeChange(*ch)))
	}

	if na := wi.Naps; na != nil && na.FewerNapsThanTypical {
		add("naps", domain.ToneNeutral, "Fewer naps than typical",
			fmt.Sprintf("About %.1f naps a day. Babies this age usually nap at least twice a day.", na.NapsPerDay))
	}

	if h := wi.Hydration; h != nil {
		tone := domain.TonePositive
		if h.Status != domain.HydrationGood {
			tone = domain.ToneWarning
		}
		add("hydration", tone, "Hydration", h.Message)
	}

	if sp := wi.Stool; sp != nil && sp.FlagCount() > 0 {
		add("stool_pattern", domain.ToneWarning, "Stool pattern", describeStool(sp))
	}

	if ch := stats.WeekOverWeek.Diapers; ch != nil && abs(*ch) >= wowNoticeablePercent {
		add("diaper_trend", domain.ToneNeutral, "Diapers vs last week",
			fmt.Sprintf("%d diapers this week, %s.", stats.Totals.Diapers, describeChange(*ch)))
	}

	if dh := wi.Diaper; dh != nil {
		tone := domain.TonePositive
		switch {
		case dh.Score < 50:
			tone = domain.ToneWarning
		case dh.Score < 70:
			tone = domain.ToneNeutral
		}
		add("diaper_health", tone, "Diaper health",
			fmt.Sprintf("Score %d: %s. Averaging %.1f wet diapers a day.", dh.Score, dh.Label, dh.AvgWetPerDay))
	}
	return cards
}

func describeChange(pct int) string {
	switch {
	case pct > 0:
		return fmt.Sprintf("up %d%% on last week", pct)
	case pct < 0:
		return fmt.Sprintf("down %d%% on last week", -pct)
	default:
		return "the same as last week"
	}
}

func describeStool(sp *domain.StoolPattern) string {
	var parts []string
	if sp.NoDirtyStreakFlag {
		parts = append(parts, fmt.Sprintf("%d days in a row without a dirty diaper", sp.MaxNoDirtyStreak))
	}
	if sp.StoolFrequencyIncreased {
		parts = append(parts, fmt.Sprintf("dirty diapers rose from %d to %d", sp.PreviousDirtyTotal, sp.CurrentDirtyTotal))
	}
	if sp.UnusualColorFlag {
		colors := make([]string, len(sp.UnusualColors))
		for i, c := range sp.UnusualColors {
			colors[i] = string(c)
		}
		parts = append(parts, fmt.Sprintf("unusual colours logged (%s)", joinList(colors)))
	}
	return capitalize(joinList(parts)) + "."
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
