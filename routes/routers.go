package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"travelapp/controllers"
	"travelapp/utils"
)

// registerValidations adds the booking date format check to gin's binding
// validator so malformed dates are rejected before handlers run.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
			_, err := utils.ParseDate(fl.Field().String())
			return err == nil
		})
	}
}

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {
	registerValidations()

	listingController := controllers.NewListingController(db, redisCli)
	bookingController := controllers.NewBookingController(db)
	reviewController := controllers.NewReviewController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/listings", listingController.GetAllListings)
	v1.GET("/listings/search", listingController.SearchListings)
	v1.POST("/listings", listingController.CreateListing)
	v1.GET("/listings/:id", listingController.GetListingDetail)
	v1.PUT("/listingUpdate", listingController.UpdateListing)
	v1.DELETE("/listings/:id", listingController.DeleteListing)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookingStatus", bookingController.ChangeBookingStatus)

	v1.GET("/reviews", reviewController.GetAllReviews)
	v1.POST("/reviews", reviewController.CreateReview)
	v1.GET("/reviews/:id", reviewController.GetReviewDetail)
	v1.PUT("/reviewUpdate", reviewController.UpdateReview)
	v1.DELETE("/reviews/:id", reviewController.DeleteReview)
}
