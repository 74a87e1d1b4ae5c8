package services

import (
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/errors"
	"travelapp/models"
	"travelapp/validator"
)

// ReviewService handles review eligibility and persistence
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReviewInput carries a review proposal into Create.
type CreateReviewInput struct {
	UserID    uint
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// Create checks eligibility against the referenced booking and stores the
// review. The eligibility snapshot and the insert share one transaction.
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	var review *models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", input.BookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", err)
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("user_id = ? AND listing_id = ?", input.UserID, booking.ListingID).
			Count(&existing).Error; err != nil {
			return err
		}

		if err := validator.ValidateReviewEligibility(input.UserID, &booking, existing > 0); err != nil {
			return err
		}

		bookingID := booking.ID
		review = &models.Review{
			ListingID: booking.ListingID,
			UserID:    input.UserID,
			BookingID: &bookingID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := validator.ValidateReview(review); err != nil {
			return err
		}

		return tx.Create(review).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// GetByID loads a review with its author
func (s *ReviewService) GetByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("User").First(&review, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "review not found", err)
		}
		return nil, err
	}
	return &review, nil
}

// ListByListing returns a listing's reviews, newest first
func (s *ReviewService) ListByListing(listingID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").Where("listing_id = ?", listingID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Update changes rating and comment only; relationships are immutable.
func (s *ReviewService) Update(id uuid.UUID, rating int, comment string) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "review not found", err)
		}
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := validator.ValidateReview(&review); err != nil {
		return nil, err
	}

	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review. Reviews have no dependents, so deletion is
// unrestricted.
func (s *ReviewService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "review not found", nil)
	}
	return nil
}
