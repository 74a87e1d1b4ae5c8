package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"travelapp/constants"
	"travelapp/models"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role int) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestListing(t *testing.T, db *gorm.DB, hostID uint, maxGuests int, pricePerNight float64) models.Listing {
	t.Helper()

	listing := models.Listing{
		Title:         "Cozy Downtown Apartment",
		Description:   "A beautiful apartment in the heart of the city.",
		Location:      "New York, NY",
		PricePerNight: pricePerNight,
		MaxGuests:     maxGuests,
		Bedrooms:      2,
		Bathrooms:     1,
		Category:      constants.CategoryApartment,
		IsAvailable:   true,
		HostID:        hostID,
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}
	return listing
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
