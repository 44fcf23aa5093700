package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seededDays = 21

// Babies are the fixed sample profiles, one per feeding style.
var Babies = []domain.Baby{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), FamilyID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Name: "Mila", Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), FamilyID: uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"), Name: "Leo", Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), FamilyID: uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc"), Name: "Aiko", Timezone: "Asia/Tokyo"},
}

// ageDays is each sample baby's age on the day of seeding.
var ageDays = []int{20, 75, 200}

// Run seeds the database with sample babies and three weeks of logs. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Baby{}, &domain.Log{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	for i, baby := range Babies {
		dob := now.AddDate(0, 0, -ageDays[i]).Truncate(24 * time.Hour)
		baby.DateOfBirth = &dob
		if err := db.Where("id = ?", baby.ID).FirstOrCreate(&baby).Error; err != nil {
			return fmt.Errorf("failed to create baby %s: %w", baby.ID, err)
		}

		for _, entry := range GenerateLogs(baby, seededDays, now, rng) {
			entry := entry
			if err := db.Where("client_request_id = ?", *entry.ClientRequestID).FirstOrCreate(&entry).Error; err != nil {
				return fmt.Errorf("failed to create %s log: %w", entry.Type, err)
			}
		}
		log.Printf("[seed] baby %s (%s) ready", baby.ID, baby.Name)
	}

	log.Println("[seed] completed")
	return nil
}

// GenerateLogs builds a plausible journal for baby covering the days before
// now: feeds roughly every three hours, a night stretch plus naps, and six to
// eight diapers a day. Every log carries a deterministic client_request_id
// so reseeding is idempotent.
func GenerateLogs(baby domain.Baby, days int, now time.Time, rng *rand.Rand) []domain.Log {
	loc := baby.Location()
	bottleFed := baby.Name != "Mila"
	var out []domain.Log

	add := func(kind string, day, n int, l domain.Log) {
		id := fmt.Sprintf("seed-%s-%s-%d-%d", kind, baby.ID, day, n)
		l.BabyID = baby.ID
		l.FamilyID = baby.FamilyID
		l.ClientRequestID = &id
		if l.StartedAt.After(now) {
			return
		}
		out = append(out, l)
	}

	for d := days; d >= 1; d-- {
		date := now.In(loc).AddDate(0, 0, -d)
		midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

		// Feeds
		t := midnight.Add(time.Duration(30+rng.Intn(60)) * time.Minute)
		for n := 0; t.Before(midnight.Add(24 * time.Hour)); n++ {
			length := time.Duration(10+rng.Intn(20)) * time.Minute
			end := t.Add(length)
			meta := `{"feed_type":"nursing"}`
			if bottleFed {
				meta = fmt.Sprintf(`{"feed_type":"bottle","amount_ml":%d}`, 90+10*rng.Intn(6))
			}
			add("feed", d, n, domain.Log{
				Type:      domain.LogTypeFeed,
				StartedAt: t.UTC(),
				EndedAt:   timePtr(end.UTC()),
				Metadata:  datatypes.JSON(meta),
			})
			t = end.Add(time.Duration(130+rng.Intn(50)) * time.Minute)
		}

		// Night stretch and naps
		night := midnight.Add(time.Duration(19*60+rng.Intn(150)) * time.Minute)
		add("night", d, 0, domain.Log{
			Type:      domain.LogTypeSleep,
			StartedAt: night.UTC(),
			EndedAt:   timePtr(night.Add(time.Duration(5*60+rng.Intn(240)) * time.Minute).UTC()),
		})
		for n := 0; n < 2+rng.Intn(3); n++ {
			nap := midnight.Add(time.Duration(8+3*n)*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
			add("nap", d, n, domain.Log{
				Type:      domain.LogTypeSleep,
				StartedAt: nap.UTC(),
				EndedAt:   timePtr(nap.Add(time.Duration(30+rng.Intn(90)) * time.Minute).UTC()),
			})
		}

		// Diapers
		for n := 0; n < 6+rng.Intn(3); n++ {
			at := midnight.Add(time.Duration(n*3)*time.Hour + time.Duration(rng.Intn(90))*time.Minute)
			meta := `{"diaper_type":"wet"}`
			switch rng.Intn(4) {
			case 0:
				meta = `{"diaper_type":"dirty","poo_type":"seedy_yellow"}`
			case 1:
				meta = `{"diaper_type":"both","poo_type":"tan_brown"}`
			}
			add("diaper", d, n, domain.Log{
				Type:      domain.LogTypeDiaper,
				StartedAt: at.UTC(),
				Metadata:  datatypes.JSON(meta),
			})
		}
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
