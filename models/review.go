package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID  `json:"listingId" gorm:"type:uuid;uniqueIndex:idx_review_user_listing"`
	Listing   Listing    `json:"-" gorm:"foreignKey:ListingID"`
	UserID    uint       `json:"userId" gorm:"uniqueIndex:idx_review_user_listing"`
	User      User       `json:"user" gorm:"foreignKey:UserID"`
	BookingID *uuid.UUID `json:"bookingId,omitempty" gorm:"type:uuid;unique"`

	Rating  int    `json:"rating" gorm:"index"` // 1-5
	Comment string `json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
