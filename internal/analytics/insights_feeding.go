package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"gonum.org/v1/gonum/stat"
)

const (
	// ClusterWindow is the span in which 3 or more feeds count as cluster feeding.
	ClusterWindow   = 180 * time.Minute
	clusterMinFeeds = 3
	clusterMergeGap = 60 * time.Second
)

// FeedingRhythm scores how regular this week's feed intervals were.
// Fewer than two valid intervals yields nil.
func FeedingRhythm(logs []domain.Log) *domain.RhythmScore {
	feeds := feedsAscending(logs)
	gaps := validGaps(feeds)
	if len(gaps) < 2 {
		return nil
	}

	mean, std := stat.PopMeanStdDev(gaps, nil)
	score := int(math.Round(clamp(100-std/10, 0, 100)))
	return &domain.RhythmScore{
		Score:         score,
		Tier:          rhythmTier(score),
		StdDevMinutes: round1(std),
		MeanMinutes:   round1(mean),
		IntervalCount: len(gaps),
	}
}

func rhythmTier(score int) domain.RhythmTier {
	switch {
	case score >= 80:
		return domain.RhythmExcellent
	case score >= 60:
		return domain.RhythmGood
	case score >= 40:
		return domain.RhythmBuilding
	default:
		return domain.RhythmIrregular
	}
}

// DetectClusterFeeds slides a ClusterWindow over feed start times and
// reports each run of 3+ feeds, merging windows that overlap or touch
// within a minute.
func DetectClusterFeeds(logs []domain.Log) []domain.ClusterEvent {
	feeds := feedsAscending(logs)
	events := []domain.ClusterEvent{}

	for i := range feeds {
		j := i
		for j+1 < len(feeds) && feeds[j+1].StartedAt.Sub(feeds[i].StartedAt) <= ClusterWindow {
			j++
		}
		count := j - i + 1
		if count < clusterMinFeeds {
			continue
		}

		start, end := feeds[i].StartedAt, feeds[j].StartedAt
		if n := len(events); n > 0 && !start.After(events[n-1].End.Add(clusterMergeGap)) {
			last := &events[n-1]
			if end.After(last.End) {
				last.End = end
			}
			if count > last.FeedCount {
				last.FeedCount = count
			}
			last.DurationMinutes = int(math.Round(last.End.Sub(last.Start).Minutes()))
			continue
		}
		events = append(events, domain.ClusterEvent{
			Start:           start,
			End:             end,
			FeedCount:       count,
			DurationMinutes: int(math.Round(end.Sub(start).Minutes())),
		})
	}
	return events
}

// feedsAscending copies feed logs sorted by start time.
func feedsAscending(logs []domain.Log) []domain.Log {
	var feeds []domain.Log
	for _, l := range logs {
		if l.Type == domain.LogTypeFeed {
			feeds = append(feeds, l)
		}
	}
	sort.Slice(feeds, func(i, j int) bool { return startedBefore(feeds[i], feeds[j]) })
	return feeds
}
