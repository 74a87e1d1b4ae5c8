package builders

import (
	"time"

	"github.com/google/uuid"

	"travelapp/models"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a new BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithListing sets the booked listing
func (b *BookingBuilder) WithListing(listingID uuid.UUID) *BookingBuilder {
	b.booking.ListingID = listingID
	return b
}

// WithGuest sets the booking guest
func (b *BookingBuilder) WithGuest(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithDates sets the stay window
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuestCount sets the guest count
func (b *BookingBuilder) WithGuestCount(numGuests int) *BookingBuilder {
	b.booking.NumGuests = numGuests
	return b
}

// WithStatus sets the booking status
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotalPrice sets the computed total price
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// WithSpecialRequests sets the free-text guest requests
func (b *BookingBuilder) WithSpecialRequests(requests string) *BookingBuilder {
	b.booking.SpecialRequests = requests
	return b
}

// Build returns the assembled booking
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
