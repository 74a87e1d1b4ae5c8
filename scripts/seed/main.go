package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"travelapp/config"
	"travelapp/models"
	"travelapp/services"
	"travelapp/services/logger"
)

// Seeds the database with sample listings, bookings and reviews. Every
// generated row passes the same validators the API uses, so the dataset
// never violates a booking or review invariant.
func main() {
	listings := flag.Int("listings", 20, "number of listings to create")
	bookings := flag.Int("bookings", 50, "number of bookings to create")
	reviews := flag.Int("reviews", 30, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *listings < 0 || *bookings < 0 || *reviews < 0 {
		fmt.Fprintln(os.Stderr, "counts must not be negative")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	config.ConnectDB()
	if err := config.DB.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	seeder := services.NewSeeder(config.DB, rng, logger.NewDefaultLogger(logger.InfoLevel))
	report, err := seeder.Run(services.SeedOptions{
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Successfully seeded database:")
	fmt.Printf("- %d users\n", report.Users)
	fmt.Printf("- %d/%d listings\n", report.ListingsCreated, report.ListingsRequested)
	fmt.Printf("- %d/%d bookings (%d skipped after retries)\n", report.BookingsCreated, report.BookingsRequested, report.BookingsSkipped)
	fmt.Printf("- %d/%d reviews\n", report.ReviewsCreated, report.ReviewsRequested)
}
