package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

type Booking struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `json:"listingId" gorm:"type:uuid;index"`
	Listing   Listing   `json:"listing" gorm:"foreignKey:ListingID"`
	UserID    uint      `json:"userId"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`

	CheckInDate  time.Time `json:"checkInDate" gorm:"type:date;index:idx_booking_dates"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"type:date;index:idx_booking_dates"`
	NumGuests    int       `json:"numGuests"`

	// TotalPrice is nights x price-per-night, fixed at creation.
	TotalPrice float64 `json:"totalPrice"`

	Status          int    `json:"status" gorm:"default:0;index"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Nights returns the stay length in whole days.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// StatusName returns the display name of the booking status.
func StatusName(status int) string {
	switch status {
	case BookingStatusPending:
		return "pending"
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCompleted:
		return "completed"
	case BookingStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
