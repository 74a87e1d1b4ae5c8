package services

import (
	"testing"

	"github.com/google/uuid"

	"travelapp/constants"
	"travelapp/errors"
	"travelapp/models"
)

func TestListingCreateValidation(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)

	svc := NewListingService(db)

	tests := []struct {
		name     string
		mutate   func(*models.Listing)
		wantCode errors.ErrorCode
	}{
		{"empty title", func(l *models.Listing) { l.Title = "" }, errors.ErrCodeRequiredField},
		{"empty location", func(l *models.Listing) { l.Location = "" }, errors.ErrCodeRequiredField},
		{"zero price", func(l *models.Listing) { l.PricePerNight = 0 }, errors.ErrCodeInvalidAmount},
		{"negative price", func(l *models.Listing) { l.PricePerNight = -10 }, errors.ErrCodeInvalidAmount},
		{"zero capacity", func(l *models.Listing) { l.MaxGuests = 0 }, errors.ErrCodeValidation},
		{"unknown category", func(l *models.Listing) { l.Category = "castle" }, errors.ErrCodeInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := models.Listing{
				Title:         "Test Listing",
				Location:      "Paris, France",
				PricePerNight: 120,
				MaxGuests:     2,
				Category:      constants.CategoryApartment,
				HostID:        host.ID,
			}
			tt.mutate(&listing)

			err := svc.Create(&listing)
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestListingListFilters(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)

	svc := NewListingService(db)

	seed := []models.Listing{
		{Title: "Paris Flat", Location: "Paris, France", Category: constants.CategoryApartment, PricePerNight: 150, MaxGuests: 2, HostID: host.ID},
		{Title: "Paris Villa", Location: "Paris, France", Category: constants.CategoryVilla, PricePerNight: 400, MaxGuests: 8, HostID: host.ID},
		{Title: "Tokyo Studio", Location: "Tokyo, Japan", Category: constants.CategoryStudio, PricePerNight: 90, MaxGuests: 1, HostID: host.ID},
	}
	for i := range seed {
		if err := svc.Create(&seed[i]); err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
	}

	t.Run("no filter", func(t *testing.T) {
		listings, total, err := svc.List(ListingFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 || len(listings) != 3 {
			t.Errorf("expected all 3 listings, got %d (total %d)", len(listings), total)
		}
	})

	t.Run("by location", func(t *testing.T) {
		listings, total, err := svc.List(ListingFilter{Location: "Paris, France"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2 listings in Paris, got %d", total)
		}
		for _, l := range listings {
			if l.Location != "Paris, France" {
				t.Errorf("unexpected location %q", l.Location)
			}
		}
	})

	t.Run("by category and capacity", func(t *testing.T) {
		_, total, err := svc.List(ListingFilter{Category: constants.CategoryVilla, MinGuests: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 {
			t.Errorf("expected 1 villa for 4+ guests, got %d", total)
		}
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		listings, total, err := svc.List(ListingFilter{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 {
			t.Errorf("expected unpaged total 3, got %d", total)
		}
		if len(listings) != 1 {
			t.Errorf("expected 1 listing on page 2, got %d", len(listings))
		}
	})
}

func TestListingDeletePolicy(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	guest := createTestUser(t, db, "guest", 0)

	svc := NewListingService(db)

	t.Run("blocked by active booking", func(t *testing.T) {
		for _, status := range []int{models.BookingStatusPending, models.BookingStatusConfirmed} {
			listing := createTestListing(t, db, host.ID, 4, 100)
			insertBooking(t, db, listing.ID, guest.ID,
				testDate(2025, 7, 1), testDate(2025, 7, 4), status)

			err := svc.Delete(listing.ID)
			if !errors.HasCode(err, errors.ErrCodeListingHasBookings) {
				t.Errorf("status %d: expected delete to be blocked, got %v", status, err)
			}

			if _, err := svc.GetByID(listing.ID); err != nil {
				t.Errorf("status %d: listing should survive blocked delete: %v", status, err)
			}
		}
	})

	t.Run("cascades finished history", func(t *testing.T) {
		listing := createTestListing(t, db, host.ID, 4, 100)
		booking := insertBooking(t, db, listing.ID, guest.ID,
			testDate(2025, 4, 1), testDate(2025, 4, 4), models.BookingStatusCompleted)
		insertBooking(t, db, listing.ID, guest.ID,
			testDate(2025, 3, 1), testDate(2025, 3, 4), models.BookingStatusCancelled)

		reviews := NewReviewService(db)
		if _, err := reviews.Create(CreateReviewInput{
			UserID:    guest.ID,
			BookingID: booking.ID,
			Rating:    5,
			Comment:   "Great stay.",
		}); err != nil {
			t.Fatalf("review setup failed: %v", err)
		}

		if err := svc.Delete(listing.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		var bookingCount, reviewCount int64
		db.Model(&models.Booking{}).Where("listing_id = ?", listing.ID).Count(&bookingCount)
		db.Model(&models.Review{}).Where("listing_id = ?", listing.ID).Count(&reviewCount)
		if bookingCount != 0 || reviewCount != 0 {
			t.Errorf("expected history removed, got %d bookings and %d reviews", bookingCount, reviewCount)
		}
	})

	t.Run("unknown listing", func(t *testing.T) {
		err := svc.Delete(uuid.New())
		if !errors.HasCode(err, errors.ErrCodeDBNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}
