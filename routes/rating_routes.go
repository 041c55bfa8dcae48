package routes

import (
	"ridefeedback/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRatingRoutes sets up routes for rating functionality
func SetupRatingRoutes(r *gin.RouterGroup, ratingHandler *handlers.RatingHandler) {
	ratings := r.Group("/ratings")
	{
		ratings.GET("", ratingHandler.ListRatings)
		ratings.POST("", ratingHandler.CreateRating)
		ratings.GET("/:id", ratingHandler.GetRating)
		ratings.PUT("/:id", ratingHandler.UpdateRating)
	}
}
