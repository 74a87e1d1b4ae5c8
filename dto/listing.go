package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title           string  `json:"title" binding:"required,max=200"`
	Description     string  `json:"description"`
	Location        string  `json:"location" binding:"required,max=100"`
	PricePerNight   float64 `json:"pricePerNight" binding:"required,gt=0"`
	MaxGuests       int     `json:"maxGuests" binding:"required,min=1"`
	Bedrooms        int     `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms       int     `json:"bathrooms" binding:"omitempty,min=0"`
	Category        string  `json:"category" binding:"omitempty,oneof=apartment house villa condo cabin studio other"`
	Wifi            bool    `json:"wifi"`
	Parking         bool    `json:"parking"`
	Pool            bool    `json:"pool"`
	Kitchen         bool    `json:"kitchen"`
	AirConditioning bool    `json:"airConditioning"`
	HostID          uint    `json:"hostId" binding:"required"`
}

type UpdateListingRequest struct {
	ID              uuid.UUID `json:"id" binding:"required"`
	Title           string    `json:"title" binding:"required,max=200"`
	Description     string    `json:"description"`
	Location        string    `json:"location" binding:"required,max=100"`
	PricePerNight   float64   `json:"pricePerNight" binding:"required,gt=0"`
	MaxGuests       int       `json:"maxGuests" binding:"required,min=1"`
	Bedrooms        int       `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms       int       `json:"bathrooms" binding:"omitempty,min=0"`
	Category        string    `json:"category" binding:"omitempty,oneof=apartment house villa condo cabin studio other"`
	Wifi            bool      `json:"wifi"`
	Parking         bool      `json:"parking"`
	Pool            bool      `json:"pool"`
	Kitchen         bool      `json:"kitchen"`
	AirConditioning bool      `json:"airConditioning"`
	IsAvailable     *bool     `json:"isAvailable"`
}

type ListingResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	PricePerNight   float64   `json:"pricePerNight"`
	MaxGuests       int       `json:"maxGuests"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
	Category        string    `json:"category"`
	Wifi            bool      `json:"wifi"`
	Parking         bool      `json:"parking"`
	Pool            bool      `json:"pool"`
	Kitchen         bool      `json:"kitchen"`
	AirConditioning bool      `json:"airConditioning"`
	IsAvailable     bool      `json:"isAvailable"`
	Host            UserInfo  `json:"host"`
	AverageRating   float64   `json:"averageRating"`
	ReviewCount     int64     `json:"reviewCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
