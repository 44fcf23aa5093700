package analytics

import (
	"fmt"
	"strings"

	"github.com/blaisecz/baby-journal/internal/domain"
)

const summaryDateLayout = "Mon Jan 2, 2006"

// FormatWeeklySummary renders a shareable plain-text summary of one week.
func FormatWeeklySummary(name string, report domain.WeeklyReport) string {
	s := report.Stats
	in := report.Insights
	var b strings.Builder

	if name == "" {
		name = "your baby"
	}
	fmt.Fprintf(&b, "Weekly summary for %s\n", name)
	fmt.Fprintf(&b, "%s to %s\n", s.RangeStart.Format(summaryDateLayout), s.RangeEnd.Format(summaryDateLayout))

	b.WriteString("\nFeeding\n")
	fmt.Fprintf(&b, "  Feeds: %d (%.1f/day)%s\n", s.Totals.Feeds, s.Averages.Feeds, changeSuffix(s.WeekOverWeek.Feeds))
	if s.Totals.NursingCount > 0 {
		fmt.Fprintf(&b, "  Nursing: %d (%d%%), %.0f min total\n",
			s.Totals.NursingCount, s.FeedInsights.NursingPercent, s.Totals.NursingDurationMin)
	}
	if s.Totals.BottleCount > 0 {
		fmt.Fprintf(&b, "  Bottle: %d (%d%%), %.0f ml total, %.0f ml average\n",
			s.Totals.BottleCount, s.FeedInsights.BottlePercent, s.Totals.BottleTotalMl, s.FeedInsights.AvgBottleMl)
	}
	fmt.Fprintf(&b, "  Night feeds: %d\n", s.FeedInsights.NightFeedCount)
	if r := in.Rhythm; r != nil {
		fmt.Fprintf(&b, "  Rhythm: score %d (%s), about every %s\n", r.Score, r.Tier, formatHoursMinutes(r.MeanMinutes/60))
	} else {
		b.WriteString("  Rhythm: not enough feeds yet\n")
	}
	if n := len(in.Clusters); n > 0 {
		fmt.Fprintf(&b, "  Cluster feeding: %d stretch(es)\n", n)
	}

	b.WriteString("\nSleep\n")
	fmt.Fprintf(&b, "  Total: %.1fh%s, recommended %.0f-%.0fh/day\n",
		s.Totals.SleepHours, changeSuffix(s.WeekOverWeek.SleepHours),
		s.SleepInsights.RecommendedMinHours, s.SleepInsights.RecommendedMaxHours)
	if na := in.Naps; na != nil {
		fmt.Fprintf(&b, "  Naps: %d (%.1f/day, avg %.0f min), %.1fh\n", na.NapCount, na.NapsPerDay, na.AvgNapMinutes, na.NapHours)
		fmt.Fprintf(&b, "  Night: %d session(s), %.1fh (avg %.1fh)\n", na.NightCount, na.NightHours, na.AvgNightHours)
		if na.LongestStretchDay != "" {
			fmt.Fprintf(&b, "  Longest stretch: %.1fh on %s\n", na.LongestStretchHours, na.LongestStretchDay)
		}
		if na.FewerNapsThanTypical {
			b.WriteString("  Fewer naps than typical for this age\n")
		}
	}
	if sd := in.SleepDebt; sd != nil {
		fmt.Fprintf(&b, "  Sleep debt: %s\n", sd.Message)
	} else {
		b.WriteString("  Sleep debt: no sleep logged yet\n")
	}

	b.WriteString("\nDiapers\n")
	fmt.Fprintf(&b, "  Total: %d (%.1f/day)%s: %d wet, %d dirty, %d both\n",
		s.Totals.Diapers, s.Averages.Diapers, changeSuffix(s.WeekOverWeek.Diapers),
		s.Totals.Wet, s.Totals.Dirty, s.Totals.Both)
	if h := in.Hydration; h != nil {
		fmt.Fprintf(&b, "  Hydration: %s\n", h.Message)
	} else {
		b.WriteString("  Hydration: no diapers logged yet\n")
	}
	if sp := in.Stool; sp != nil && sp.FlagCount() > 0 {
		fmt.Fprintf(&b, "  Stool: %s\n", describeStool(sp))
	}
	if dh := in.Diaper; dh != nil {
		fmt.Fprintf(&b, "  Diaper health: %d (%s)\n", dh.Score, dh.Label)
	}

	return b.String()
}

func changeSuffix(pct *int) string {
	if pct == nil {
		return ""
	}
	return ", " + describeChange(*pct)
}

// joinList joins items as "a", "a and b" or "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
