package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/baby-journal/internal/config"
	"github.com/blaisecz/baby-journal/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Println("\nSample baby IDs for testing:")
	for _, baby := range seed.Babies {
		fmt.Printf("  %s  %-5s (%s)\n", baby.ID, baby.Name, baby.Timezone)
	}
}
