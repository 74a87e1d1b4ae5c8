package services

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/errors"
	"travelapp/models"
)

func insertBooking(t *testing.T, db *gorm.DB, listingID uuid.UUID, userID uint, checkIn, checkOut time.Time, status int) models.Booking {
	t.Helper()

	booking := models.Booking{
		ListingID:    listingID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    2,
		TotalPrice:   300,
		Status:       status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("insert booking failed: %v", err)
	}
	return booking
}

func TestReviewCreate(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	guest := createTestUser(t, db, "guest", 0)
	listing := createTestListing(t, db, host.ID, 4, 100)
	booking := insertBooking(t, db, listing.ID, guest.ID,
		testDate(2025, 4, 10), testDate(2025, 4, 13), models.BookingStatusCompleted)

	svc := NewReviewService(db)

	review, err := svc.Create(CreateReviewInput{
		UserID:    guest.ID,
		BookingID: booking.ID,
		Rating:    5,
		Comment:   "Wonderful stay, would book again.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.ListingID != listing.ID {
		t.Errorf("review bound to wrong listing: %s", review.ListingID)
	}
	if review.BookingID == nil || *review.BookingID != booking.ID {
		t.Error("review should reference its booking")
	}
}

func TestReviewCreateEligibility(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	guest := createTestUser(t, db, "guest", 0)
	stranger := createTestUser(t, db, "stranger", 0)
	listing := createTestListing(t, db, host.ID, 4, 100)

	svc := NewReviewService(db)

	t.Run("booking not completed", func(t *testing.T) {
		for _, status := range []int{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled} {
			booking := insertBooking(t, db, listing.ID, guest.ID,
				testDate(2025, 4, 1).AddDate(0, status, 0), testDate(2025, 4, 3).AddDate(0, status, 0), status)

			_, err := svc.Create(CreateReviewInput{
				UserID:    guest.ID,
				BookingID: booking.ID,
				Rating:    4,
				Comment:   "Nice place.",
			})
			if !errors.HasCode(err, errors.ErrCodeBookingNotCompleted) {
				t.Errorf("status %d: expected booking-not-completed, got %v", status, err)
			}
		}
	})

	t.Run("reviewer is not the guest", func(t *testing.T) {
		booking := insertBooking(t, db, listing.ID, guest.ID,
			testDate(2025, 1, 10), testDate(2025, 1, 13), models.BookingStatusCompleted)

		_, err := svc.Create(CreateReviewInput{
			UserID:    stranger.ID,
			BookingID: booking.ID,
			Rating:    4,
			Comment:   "Nice place.",
		})
		if !errors.HasCode(err, errors.ErrCodeReviewerMismatch) {
			t.Errorf("expected reviewer mismatch, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.Create(CreateReviewInput{
			UserID:    guest.ID,
			BookingID: uuid.New(),
			Rating:    4,
			Comment:   "Nice place.",
		})
		if !errors.HasCode(err, errors.ErrCodeDBNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("invalid rating", func(t *testing.T) {
		booking := insertBooking(t, db, listing.ID, guest.ID,
			testDate(2025, 2, 10), testDate(2025, 2, 13), models.BookingStatusCompleted)

		_, err := svc.Create(CreateReviewInput{
			UserID:    guest.ID,
			BookingID: booking.ID,
			Rating:    6,
			Comment:   "Nice place.",
		})
		if !errors.HasCode(err, errors.ErrCodeValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestReviewCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	guest := createTestUser(t, db, "guest", 0)
	listing := createTestListing(t, db, host.ID, 4, 100)

	first := insertBooking(t, db, listing.ID, guest.ID,
		testDate(2025, 1, 10), testDate(2025, 1, 13), models.BookingStatusCompleted)
	second := insertBooking(t, db, listing.ID, guest.ID,
		testDate(2025, 3, 10), testDate(2025, 3, 13), models.BookingStatusCompleted)

	svc := NewReviewService(db)

	if _, err := svc.Create(CreateReviewInput{
		UserID:    guest.ID,
		BookingID: first.ID,
		Rating:    4,
		Comment:   "Great location.",
	}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	// A second completed stay does not grant a second review of the listing.
	_, err := svc.Create(CreateReviewInput{
		UserID:    guest.ID,
		BookingID: second.ID,
		Rating:    5,
		Comment:   "Even better this time.",
	})
	if !errors.HasCode(err, errors.ErrCodeDuplicateReview) {
		t.Errorf("expected duplicate review, got %v", err)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 review persisted, found %d", count)
	}
}

func TestReviewUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	guest := createTestUser(t, db, "guest", 0)
	listing := createTestListing(t, db, host.ID, 4, 100)
	booking := insertBooking(t, db, listing.ID, guest.ID,
		testDate(2025, 1, 10), testDate(2025, 1, 13), models.BookingStatusCompleted)

	svc := NewReviewService(db)

	review, err := svc.Create(CreateReviewInput{
		UserID:    guest.ID,
		BookingID: booking.ID,
		Rating:    3,
		Comment:   "Average experience.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(review.ID, 4, "Better than I first thought.")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Rating != 4 {
		t.Errorf("expected rating 4, got %d", updated.Rating)
	}
	if updated.ListingID != listing.ID || updated.UserID != guest.ID {
		t.Error("update must not change review relationships")
	}

	if _, err := svc.Update(review.ID, 0, "bad rating"); !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	if err := svc.Delete(review.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(review.ID); !errors.HasCode(err, errors.ErrCodeDBNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestListingAverageRating(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)
	listing := createTestListing(t, db, host.ID, 4, 100)

	listings := NewListingService(db)
	reviews := NewReviewService(db)

	avg, err := listings.AverageRating(listing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 0 {
		t.Errorf("expected 0 for unreviewed listing, got %v", avg)
	}

	for i, rating := range []int{5, 4, 2} {
		guest := createTestUser(t, db, "guest"+string(rune('a'+i)), 0)
		booking := insertBooking(t, db, listing.ID, guest.ID,
			testDate(2025, 1, 10+3*i), testDate(2025, 1, 12+3*i), models.BookingStatusCompleted)
		if _, err := reviews.Create(CreateReviewInput{
			UserID:    guest.ID,
			BookingID: booking.ID,
			Rating:    rating,
			Comment:   "A stay.",
		}); err != nil {
			t.Fatalf("review %d failed: %v", i, err)
		}
	}

	avg, err = listings.AverageRating(listing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (5.0 + 4.0 + 2.0) / 3.0
	if math.Abs(avg-want) > 1e-9 {
		t.Errorf("expected average %v, got %v", want, avg)
	}

	count, err := listings.ReviewCount(listing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 reviews, got %d", count)
	}
}
