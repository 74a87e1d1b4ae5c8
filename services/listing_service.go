package services

import (
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/errors"
	"travelapp/models"
	"travelapp/validator"
)

// ListingService handles listing persistence and the delete policy
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// ListingFilter narrows List results.
type ListingFilter struct {
	Location  string
	Category  string
	MinGuests int
	Page      int
	Limit     int
}

// Create validates and stores a new listing
func (s *ListingService) Create(listing *models.Listing) error {
	if err := validator.ValidateListing(listing); err != nil {
		return err
	}
	return s.db.Create(listing).Error
}

// GetByID loads a listing with its host
func (s *ListingService) GetByID(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Preload("Host").First(&listing, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "listing not found", err)
		}
		return nil, err
	}
	return &listing, nil
}

// List returns listings matching the filter plus the unpaged total
func (s *ListingService) List(filter ListingFilter) ([]models.Listing, int64, error) {
	tx := s.db.Model(&models.Listing{})

	if filter.Location != "" {
		tx = tx.Where("location = ?", filter.Location)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.MinGuests > 0 {
		tx = tx.Where("max_guests >= ?", filter.MinGuests)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		tx = tx.Offset(offset).Limit(filter.Limit)
	}

	var listings []models.Listing
	if err := tx.Preload("Host").Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// Update validates and saves listing changes
func (s *ListingService) Update(listing *models.Listing) error {
	if err := validator.ValidateListing(listing); err != nil {
		return err
	}
	return s.db.Save(listing).Error
}

// Delete removes a listing. Deletion is blocked while the listing still has
// pending or confirmed bookings; finished history is removed with it.
func (s *ListingService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "listing not found", err)
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.Booking{}).
			Where("listing_id = ? AND status IN ?", id, []int{models.BookingStatusPending, models.BookingStatusConfirmed}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return errors.NewAppError(errors.ErrCodeListingHasBookings, "listing has active bookings and cannot be deleted", nil)
		}

		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
}

// AverageRating computes the mean review rating, 0 when unreviewed.
func (s *ListingService) AverageRating(id uuid.UUID) (float64, error) {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Where("listing_id = ?", id).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// ReviewCount counts the listing's reviews.
func (s *ListingService) ReviewCount(id uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Review{}).Where("listing_id = ?", id).Count(&count).Error
	return count, err
}
