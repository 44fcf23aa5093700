// Command feedwatch keeps a live next-feed countdown for one baby.
//
// It refreshes the prediction on PREDICTION_REFRESH_INTERVAL, re-renders the
// countdown on COUNTDOWN_TICK_INTERVAL, and refreshes immediately on SIGUSR1.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/blaisecz/baby-journal/internal/config"
	"github.com/blaisecz/baby-journal/internal/repository"
	"github.com/blaisecz/baby-journal/internal/service"
	"github.com/google/uuid"
)

func main() {
	babyFlag := flag.String("baby", os.Getenv("BABY_ID"), "baby ID to watch (defaults to $BABY_ID)")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	babyID, err := uuid.Parse(*babyFlag)
	if err != nil {
		log.Fatalf("Invalid baby ID %q: %v", *babyFlag, err)
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	predictionService := service.NewPredictionService(
		repository.NewLogRepository(db),
		repository.NewBabyRepository(db),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := service.NewPredictionWatcher(predictionService, babyID, cfg.PredictionRefreshInterval, cfg.CountdownTickInterval)
	watcher.Start(ctx)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	log.Printf("[feedwatch] watching baby %s", babyID)
	for {
		select {
		case sig := <-signals:
			if sig == syscall.SIGUSR1 {
				watcher.Foreground()
				continue
			}
			log.Printf("[feedwatch] %s received, stopping", sig)
			watcher.Stop()
			return
		case snap, ok := <-watcher.Snapshots():
			if !ok {
				return
			}
			logSnapshot(snap)
		}
	}
}

func logSnapshot(snap service.WatchSnapshot) {
	if snap.Err != nil {
		log.Printf("[feedwatch] %s: %v", snap.Reason, snap.Err)
		return
	}
	p := snap.Prediction
	if p == nil || p.Prediction.NextFeedTime == nil {
		log.Printf("[feedwatch] %s: no feeds logged yet", snap.Reason)
		return
	}
	log.Printf("[feedwatch] %s: next feed %s (%s, %s confidence)",
		snap.Reason,
		p.Prediction.NextFeedTime.Format("15:04"),
		p.Countdown.Label,
		p.Prediction.Confidence,
	)
}
