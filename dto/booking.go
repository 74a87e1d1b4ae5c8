package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ListingID       uuid.UUID `json:"listingId" binding:"required"`
	UserID          uint      `json:"userId" binding:"required"`
	CheckInDate     string    `json:"checkInDate" binding:"required,dateformat"`
	CheckOutDate    string    `json:"checkOutDate" binding:"required,dateformat"`
	NumGuests       int       `json:"numGuests" binding:"required,min=1"`
	SpecialRequests string    `json:"specialRequests"`
}

// UpdateBookingStatusRequest drives the pending/confirmed/cancelled/
// completed transitions.
type UpdateBookingStatusRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Status int       `json:"status" binding:"min=0,max=3"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingTitle    string    `json:"listingTitle,omitempty"`
	UserID          uint      `json:"userId"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	NumGuests       int       `json:"numGuests"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          int       `json:"status"`
	StatusName      string    `json:"statusName"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
