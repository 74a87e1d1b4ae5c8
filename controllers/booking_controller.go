package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"
	"travelapp/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		bookings: services.NewBookingService(db),
	}
}

func bookingToResponse(booking *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:              booking.ID,
		ListingID:       booking.ListingID,
		ListingTitle:    booking.Listing.Title,
		UserID:          booking.UserID,
		CheckInDate:     utils.FormatDate(booking.CheckInDate),
		CheckOutDate:    utils.FormatDate(booking.CheckOutDate),
		NumGuests:       booking.NumGuests,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		StatusName:      models.StatusName(booking.Status),
		SpecialRequests: booking.SpecialRequests,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// GetBookings lists bookings for a listing or a user
func (ctl *BookingController) GetBookings(c *gin.Context) {
	if listingID := c.DefaultQuery("listingId", ""); listingID != "" {
		id, err := uuid.Parse(listingID)
		if err != nil {
			response.BadRequest(c, "Invalid listing id")
			return
		}
		bookings, err := ctl.bookings.ListByListing(id)
		if err != nil {
			response.ServerError(c)
			return
		}
		ctl.respondList(c, bookings)
		return
	}

	if userID := c.DefaultQuery("userId", ""); userID != "" {
		id, err := strconv.Atoi(userID)
		if err != nil {
			response.BadRequest(c, "Invalid user id")
			return
		}
		bookings, err := ctl.bookings.ListByUser(uint(id))
		if err != nil {
			response.ServerError(c)
			return
		}
		ctl.respondList(c, bookings)
		return
	}

	response.BadRequest(c, "listingId or userId query parameter is required")
}

func (ctl *BookingController) respondList(c *gin.Context, bookings []models.Booking) {
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, bookingToResponse(&bookings[i]))
	}
	response.Success(c, bookingResponses)
}

// CreateBooking validates and creates a pending booking
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return
	}

	booking, err := ctl.bookings.Create(services.CreateBookingInput{
		ListingID:       req.ListingID,
		UserID:          req.UserID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, bookingToResponse(booking))
}

// GetBookingDetail returns one booking
func (ctl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := ctl.bookings.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, bookingToResponse(booking))
}

// ChangeBookingStatus runs a state-machine transition on a booking
func (ctl *BookingController) ChangeBookingStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var booking *models.Booking
	var err error
	switch req.Status {
	case models.BookingStatusConfirmed:
		booking, err = ctl.bookings.Confirm(req.ID)
	case models.BookingStatusCancelled:
		booking, err = ctl.bookings.Cancel(req.ID)
	case models.BookingStatusCompleted:
		booking, err = ctl.bookings.Complete(req.ID)
	default:
		response.BadRequest(c, "Unsupported status transition")
		return
	}
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, bookingToResponse(booking))
}
