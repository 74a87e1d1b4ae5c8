package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"
)

type ReviewController struct {
	reviews *services.ReviewService
	rdb     *redis.Client
}

func NewReviewController(db *gorm.DB, rdb *redis.Client) *ReviewController {
	return &ReviewController{
		reviews: services.NewReviewService(db),
		rdb:     rdb,
	}
}

func reviewToResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ListingID: review.ListingID,
		BookingID: review.BookingID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		User: dto.UserInfo{
			ID:       review.User.ID,
			Username: review.User.Username,
			Email:    review.User.Email,
		},
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// GetAllReviews lists reviews for a listing, served from redis when warm
func (ctl *ReviewController) GetAllReviews(c *gin.Context) {
	listingIDFilter := c.DefaultQuery("listingId", "")
	if listingIDFilter == "" {
		response.BadRequest(c, "listingId query parameter is required")
		return
	}

	listingID, err := uuid.Parse(listingIDFilter)
	if err != nil {
		response.BadRequest(c, "Invalid listing id")
		return
	}

	cacheKey := fmt.Sprintf("reviews:listing:%s", listingID)
	if ctl.rdb != nil {
		var cached []dto.ReviewResponse
		if err := services.GetFromRedis(c.Request.Context(), ctl.rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	reviews, err := ctl.reviews.ListByListing(listingID)
	if err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, reviewToResponse(&reviews[i]))
	}

	if ctl.rdb != nil {
		if err := services.SetToRedis(c.Request.Context(), ctl.rdb, cacheKey, reviewResponses, 10*time.Minute); err != nil {
			log.Printf("failed to cache reviews: %v", err)
		}
	}

	response.Success(c, reviewResponses)
}

// CreateReview creates a review for a completed booking
func (ctl *ReviewController) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := ctl.reviews.Create(services.CreateReviewInput{
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c, review.ListingID)
	response.Success(c, review)
}

// GetReviewDetail returns one review
func (ctl *ReviewController) GetReviewDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	review, err := ctl.reviews.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, reviewToResponse(review))
}

// UpdateReview edits rating and comment of an existing review
func (ctl *ReviewController) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := ctl.reviews.Update(req.ID, req.Rating, req.Comment)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c, review.ListingID)
	response.Success(c, reviewToResponse(review))
}

// DeleteReview removes a review
func (ctl *ReviewController) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	review, err := ctl.reviews.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := ctl.reviews.Delete(id); err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache(c, review.ListingID)
	response.Success(c, gin.H{"deleted": id})
}

func (ctl *ReviewController) invalidateCache(c *gin.Context, listingID uuid.UUID) {
	if ctl.rdb == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("reviews:listing:%s", listingID),
		fmt.Sprintf("%s:limit:%d", services.CacheKeyListings, 20),
	}
	if err := services.DeleteFromRedis(c.Request.Context(), ctl.rdb, keys...); err != nil {
		log.Printf("failed to invalidate review cache: %v", err)
	}
}
