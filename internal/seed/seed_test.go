package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/blaisecz/baby-journal/internal/analytics"
	"github.com/blaisecz/baby-journal/internal/domain"
)

var seedNow = time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

func TestGenerateLogs_Shape(t *testing.T) {
	const days = 7
	baby := Babies[0]
	logs := GenerateLogs(baby, days, seedNow, rand.New(rand.NewSource(1)))

	counts := map[domain.LogType]int{}
	ids := map[string]bool{}
	for _, l := range logs {
		counts[l.Type]++
		if l.BabyID != baby.ID || l.FamilyID != baby.FamilyID {
			t.Fatalf("log not owned by %s: %+v", baby.Name, l)
		}
		if l.StartedAt.After(seedNow) {
			t.Errorf("log starts in the future: %s", l.StartedAt)
		}
		if l.StartedAt.Location() != time.UTC {
			t.Errorf("expected UTC start, got %s", l.StartedAt.Location())
		}
		if l.ClientRequestID == nil {
			t.Fatal("missing client_request_id")
		}
		if ids[*l.ClientRequestID] {
			t.Errorf("duplicate client_request_id %s", *l.ClientRequestID)
		}
		ids[*l.ClientRequestID] = true
	}

	if got := counts[domain.LogTypeDiaper]; got < 6*days || got > 8*days {
		t.Errorf("diapers = %d, want between %d and %d", got, 6*days, 8*days)
	}
	if got := counts[domain.LogTypeSleep]; got < 3*days || got > 5*days {
		t.Errorf("sleep sessions = %d, want between %d and %d", got, 3*days, 5*days)
	}
	if got := counts[domain.LogTypeFeed]; got < 5*days {
		t.Errorf("feeds = %d, want at least %d", got, 5*days)
	}
}

func TestGenerateLogs_FeedStyle(t *testing.T) {
	tests := []struct {
		name string
		baby domain.Baby
		want domain.FeedType
	}{
		{"nursing", Babies[0], domain.FeedTypeNursing},
		{"bottle", Babies[1], domain.FeedTypeBottle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := GenerateLogs(tt.baby, 3, seedNow, rand.New(rand.NewSource(2)))
			for _, l := range logs {
				if l.Type != domain.LogTypeFeed {
					continue
				}
				d := l.FeedDetails()
				if d.FeedType != tt.want {
					t.Fatalf("feed type = %q, want %q", d.FeedType, tt.want)
				}
				if tt.want == domain.FeedTypeBottle && d.AmountML == nil {
					t.Fatal("bottle feed without amount")
				}
			}
		})
	}
}

func TestGenerateLogs_NightSleepStartsAtNight(t *testing.T) {
	baby := Babies[2]
	loc := baby.Location()
	logs := GenerateLogs(baby, 5, seedNow, rand.New(rand.NewSource(3)))

	nights := 0
	for _, l := range logs {
		if l.Type == domain.LogTypeSleep && analytics.IsNightStart(l.StartedAt.In(loc)) {
			nights++
		}
	}
	if nights != 5 {
		t.Errorf("night sessions = %d, want 5", nights)
	}
}

func TestGenerateLogs_StableIDs(t *testing.T) {
	a := GenerateLogs(Babies[1], 4, seedNow, rand.New(rand.NewSource(7)))
	b := GenerateLogs(Babies[1], 4, seedNow, rand.New(rand.NewSource(7)))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if *a[i].ClientRequestID != *b[i].ClientRequestID {
			t.Fatalf("id %d differs: %s vs %s", i, *a[i].ClientRequestID, *b[i].ClientRequestID)
		}
	}
}
