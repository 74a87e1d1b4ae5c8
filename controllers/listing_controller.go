package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"travelapp/constants"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"
)

type ListingController struct {
	listings *services.ListingService
	search   *services.SearchService
	rdb      *redis.Client
}

func NewListingController(db *gorm.DB, rdb *redis.Client) *ListingController {
	return &ListingController{
		listings: services.NewListingService(db),
		search:   services.NewSearchService(db),
		rdb:      rdb,
	}
}

func (ctl *ListingController) toResponse(listing *models.Listing) dto.ListingResponse {
	avg, err := ctl.listings.AverageRating(listing.ID)
	if err != nil {
		avg = 0
	}
	count, err := ctl.listings.ReviewCount(listing.ID)
	if err != nil {
		count = 0
	}

	return dto.ListingResponse{
		ID:              listing.ID,
		Title:           listing.Title,
		Description:     listing.Description,
		Location:        listing.Location,
		PricePerNight:   listing.PricePerNight,
		MaxGuests:       listing.MaxGuests,
		Bedrooms:        listing.Bedrooms,
		Bathrooms:       listing.Bathrooms,
		Category:        listing.Category,
		Wifi:            listing.Wifi,
		Parking:         listing.Parking,
		Pool:            listing.Pool,
		Kitchen:         listing.Kitchen,
		AirConditioning: listing.AirConditioning,
		IsAvailable:     listing.IsAvailable,
		Host: dto.UserInfo{
			ID:       listing.Host.ID,
			Username: listing.Host.Username,
			Email:    listing.Host.Email,
		},
		AverageRating: avg,
		ReviewCount:   count,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}

// GetAllListings lists listings with optional filters; the unfiltered first
// page is served from redis when warm.
func (ctl *ListingController) GetAllListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := services.ListingFilter{
		Location: c.DefaultQuery("location", ""),
		Category: c.DefaultQuery("category", ""),
		Page:     page,
		Limit:    limit,
	}
	if guests := c.DefaultQuery("guests", ""); guests != "" {
		if parsed, err := strconv.Atoi(guests); err == nil {
			filter.MinGuests = parsed
		}
	}

	cacheable := filter.Location == "" && filter.Category == "" && filter.MinGuests == 0 && page == 1
	cacheKey := fmt.Sprintf("%s:limit:%d", services.CacheKeyListings, limit)

	if cacheable && ctl.rdb != nil {
		var cached []dto.ListingResponse
		if err := services.GetFromRedis(c.Request.Context(), ctl.rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	listings, total, err := ctl.listings.List(filter)
	if err != nil {
		response.ServerError(c)
		return
	}

	listingResponses := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		listingResponses = append(listingResponses, ctl.toResponse(&listings[i]))
	}

	if cacheable && ctl.rdb != nil {
		if err := services.SetToRedis(c.Request.Context(), ctl.rdb, cacheKey, listingResponses, 10*time.Minute); err != nil {
			log.Printf("failed to cache listings: %v", err)
		}
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, int(total))
}

// SearchListings ranks listings against a free-text query
func (ctl *ListingController) SearchListings(c *gin.Context) {
	query := c.DefaultQuery("q", "")
	if query == "" {
		response.BadRequest(c, "query must not be empty")
		return
	}

	scored, err := ctl.search.Search(query)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, scored)
}

// CreateListing creates a listing for a host
func (ctl *ListingController) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	listing := models.Listing{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		PricePerNight:   req.PricePerNight,
		MaxGuests:       req.MaxGuests,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		Category:        req.Category,
		Wifi:            req.Wifi,
		Parking:         req.Parking,
		Pool:            req.Pool,
		Kitchen:         req.Kitchen,
		AirConditioning: req.AirConditioning,
		IsAvailable:     true,
		HostID:          req.HostID,
	}
	if listing.Category == "" {
		listing.Category = constants.CategoryApartment
	}
	if listing.Bedrooms == 0 {
		listing.Bedrooms = 1
	}
	if listing.Bathrooms == 0 {
		listing.Bathrooms = 1
	}

	if err := ctl.listings.Create(&listing); err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c)
	response.Success(c, listing)
}

// GetListingDetail returns one listing with its derived rating
func (ctl *ListingController) GetListingDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing id")
		return
	}

	listing, err := ctl.listings.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, ctl.toResponse(listing))
}

// UpdateListing applies host edits to a listing
func (ctl *ListingController) UpdateListing(c *gin.Context) {
	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	listing, err := ctl.listings.GetByID(req.ID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Location = req.Location
	listing.PricePerNight = req.PricePerNight
	listing.MaxGuests = req.MaxGuests
	if req.Bedrooms > 0 {
		listing.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms > 0 {
		listing.Bathrooms = req.Bathrooms
	}
	if req.Category != "" {
		listing.Category = req.Category
	}
	listing.Wifi = req.Wifi
	listing.Parking = req.Parking
	listing.Pool = req.Pool
	listing.Kitchen = req.Kitchen
	listing.AirConditioning = req.AirConditioning
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}

	if err := ctl.listings.Update(listing); err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c)
	response.Success(c, ctl.toResponse(listing))
}

// DeleteListing removes a listing unless it still has active bookings
func (ctl *ListingController) DeleteListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing id")
		return
	}

	if err := ctl.listings.Delete(id); err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c)
	response.Success(c, gin.H{"deleted": id})
}

func (ctl *ListingController) invalidateCache(c *gin.Context) {
	if ctl.rdb == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("%s:limit:%d", services.CacheKeyListings, 20),
		services.CacheKeyReviews,
	}
	if err := services.DeleteFromRedis(c.Request.Context(), ctl.rdb, keys...); err != nil {
		log.Printf("failed to invalidate listing cache: %v", err)
	}
}
