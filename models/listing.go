package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/constants"
)

type Listing struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string    `json:"title" gorm:"size:200"`
	Description   string    `json:"description"`
	Location      string    `json:"location" gorm:"size:100;index"`
	PricePerNight float64   `json:"pricePerNight" gorm:"index"`
	MaxGuests     int       `json:"maxGuests"`
	Bedrooms      int       `json:"bedrooms" gorm:"default:1"`
	Bathrooms     int       `json:"bathrooms" gorm:"default:1"`
	Category      string    `json:"category" gorm:"size:20;default:apartment"`

	// Amenities
	Wifi            bool `json:"wifi" gorm:"default:false"`
	Parking         bool `json:"parking" gorm:"default:false"`
	Pool            bool `json:"pool" gorm:"default:false"`
	Kitchen         bool `json:"kitchen" gorm:"default:false"`
	AirConditioning bool `json:"airConditioning" gorm:"default:false"`

	IsAvailable bool `json:"isAvailable" gorm:"default:true;index"`

	HostID uint `json:"hostId"`
	Host   User `json:"host" gorm:"foreignKey:HostID"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ListingID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *Listing) ValidateCategory() error {
	for _, c := range constants.Categories {
		if l.Category == c {
			return nil
		}
	}
	return fmt.Errorf("invalid category: %s", l.Category)
}
