package services

import (
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/errors"
	"travelapp/models"
	"travelapp/utils"
	"travelapp/validator"
)

// BookingService handles booking creation and status transitions
type BookingService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:  db,
		now: time.Now,
	}
}

// CreateBookingInput carries a booking proposal into Create.
type CreateBookingInput struct {
	ListingID       uuid.UUID
	UserID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int
	SpecialRequests string
}

// Create validates a proposal and stores the booking. The overlap check and
// the insert share one transaction so concurrent writers cannot both pass
// the check; the schema's exclusion constraint backstops the race.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	var listing models.Listing
	if err := s.db.First(&listing, "id = ?", input.ListingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "listing not found", err)
		}
		return nil, err
	}

	if err := validator.ValidateBookingDates(input.CheckInDate, input.CheckOutDate, s.now()); err != nil {
		return nil, err
	}
	if err := validator.ValidateCapacity(input.NumGuests, listing.MaxGuests); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ListingID:       input.ListingID,
		UserID:          input.UserID,
		CheckInDate:     utils.DateOnly(input.CheckInDate),
		CheckOutDate:    utils.DateOnly(input.CheckOutDate),
		NumGuests:       input.NumGuests,
		Status:          models.BookingStatusPending,
		SpecialRequests: input.SpecialRequests,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Booking
		if err := tx.Where("listing_id = ? AND status <> ?", input.ListingID, models.BookingStatusCancelled).
			Find(&existing).Error; err != nil {
			return err
		}

		if err := validator.ValidateNoOverlap(booking.CheckInDate, booking.CheckOutDate, existing, uuid.Nil); err != nil {
			return err
		}

		total, err := validator.ComputeTotalPrice(booking.CheckInDate, booking.CheckOutDate, listing.PricePerNight)
		if err != nil {
			return err
		}
		booking.TotalPrice = total

		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByID loads a booking with its listing and guest
func (s *BookingService) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Listing").Preload("User").First(&booking, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", err)
		}
		return nil, err
	}
	return &booking, nil
}

// ListByListing returns the listing's bookings, newest first
func (s *BookingService) ListByListing(listingID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// ListByUser returns the guest's booking history, newest first
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Listing").Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// Confirm moves a booking to confirmed through the state machine
func (s *BookingService) Confirm(id uuid.UUID) (*models.Booking, error) {
	return s.transition(id, func(state models.BookingState, booking *models.Booking) error {
		return state.Confirm(booking)
	})
}

// Cancel moves a booking to cancelled, freeing its date window
func (s *BookingService) Cancel(id uuid.UUID) (*models.Booking, error) {
	return s.transition(id, func(state models.BookingState, booking *models.Booking) error {
		return state.Cancel(booking)
	})
}

// Complete moves a confirmed booking to completed, making it reviewable
func (s *BookingService) Complete(id uuid.UUID) (*models.Booking, error) {
	return s.transition(id, func(state models.BookingState, booking *models.Booking) error {
		return state.Complete(booking)
	})
}

func (s *BookingService) transition(id uuid.UUID, apply func(models.BookingState, *models.Booking) error) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", err)
		}
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	if err := apply(state, &booking); err != nil {
		return nil, err
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CompleteElapsed marks confirmed bookings whose check-out date has passed
// as completed. Run by the daily cron job.
func (s *BookingService) CompleteElapsed() (int64, error) {
	today := utils.DateOnly(s.now())
	result := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date <= ?", models.BookingStatusConfirmed, today).
		Update("status", models.BookingStatusCompleted)
	return result.RowsAffected, result.Error
}
