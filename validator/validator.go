package validator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"travelapp/errors"
	"travelapp/models"
	"travelapp/utils"
)

// ValidateBookingDates checks the date range of a booking proposal.
// now is passed in so callers (and tests) control the clock.
func ValidateBookingDates(checkIn, checkOut, now time.Time) error {
	if !utils.DateOnly(checkOut).After(utils.DateOnly(checkIn)) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "check-out date must be after check-in date", nil)
	}

	if utils.DateOnly(checkIn).Before(utils.DateOnly(now)) {
		return errors.NewAppError(errors.ErrCodePastDate, "check-in date cannot be in the past", nil)
	}

	return nil
}

// ValidateCapacity checks the guest count against the listing capacity.
func ValidateCapacity(numGuests, maxGuests int) error {
	if numGuests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "number of guests must be at least 1", nil)
	}

	if numGuests > maxGuests {
		msg := fmt.Sprintf("number of guests (%d) exceeds maximum allowed (%d)", numGuests, maxGuests)
		return errors.NewAppError(errors.ErrCodeCapacityExceeded, msg, nil)
	}

	return nil
}

// ValidateNoOverlap checks the proposed [checkIn, checkOut) range against a
// snapshot of the listing's bookings. Ranges are half-open: a check-in on
// another booking's check-out day does not conflict. Cancelled bookings and
// the booking identified by excludeID never conflict.
func ValidateNoOverlap(checkIn, checkOut time.Time, existing []models.Booking, excludeID uuid.UUID) error {
	in := utils.DateOnly(checkIn)
	out := utils.DateOnly(checkOut)

	for _, booking := range existing {
		if booking.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != uuid.Nil && booking.ID == excludeID {
			continue
		}

		if in.Before(utils.DateOnly(booking.CheckOutDate)) && utils.DateOnly(booking.CheckInDate).Before(out) {
			msg := fmt.Sprintf("dates overlap existing booking %s (%s to %s)",
				booking.ID, utils.FormatDate(booking.CheckInDate), utils.FormatDate(booking.CheckOutDate))
			return errors.NewAppError(errors.ErrCodeBookingOverlap, msg, nil)
		}
	}

	return nil
}

// ValidateReviewEligibility checks that userID may review the listing of the
// given booking. hasExistingReview is the caller's snapshot of whether a
// review by this user for this listing already exists.
func ValidateReviewEligibility(userID uint, booking *models.Booking, hasExistingReview bool) error {
	if booking.Status != models.BookingStatusCompleted {
		return errors.NewAppError(errors.ErrCodeBookingNotCompleted, "only completed bookings can be reviewed", nil)
	}

	if booking.UserID != userID {
		return errors.NewAppError(errors.ErrCodeReviewerMismatch, "only the booking guest can review this stay", nil)
	}

	if hasExistingReview {
		return errors.NewAppError(errors.ErrCodeDuplicateReview, "you have already reviewed this listing", nil)
	}

	return nil
}

// ComputeTotalPrice returns nights x price-per-night. The zero-duration
// check is unreachable after ValidateBookingDates but kept as a backstop.
func ComputeTotalPrice(checkIn, checkOut time.Time, pricePerNight float64) (float64, error) {
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeZeroDuration, "booking must span at least one night", nil)
	}

	return float64(nights) * pricePerNight, nil
}

// ValidateListing checks listing fields
func ValidateListing(listing *models.Listing) error {
	if listing.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "title must not be empty", nil)
	}

	if listing.Location == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "location must not be empty", nil)
	}

	if listing.PricePerNight <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price per night must be greater than zero", nil)
	}

	if listing.MaxGuests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "max guests must be at least 1", nil)
	}

	if err := listing.ValidateCategory(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, err.Error(), nil)
	}

	return nil
}

// ValidateReview checks review fields
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "user id must not be empty", nil)
	}

	if review.ListingID == uuid.Nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "listing id must not be empty", nil)
	}

	if review.Rating < 1 || review.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "rating must be between 1 and 5", nil)
	}

	if review.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "comment must not be empty", nil)
	}

	return nil
}
