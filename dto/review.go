package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	UserID    uint      `json:"userId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	ID      uuid.UUID `json:"id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"required"`
}

type ReviewResponse struct {
	ID        uuid.UUID  `json:"id"`
	ListingID uuid.UUID  `json:"listingId"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	User      UserInfo   `json:"user"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
