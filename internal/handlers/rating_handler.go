package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ridefeedback/internal/repositories/interfaces"
	"ridefeedback/internal/services"
	"ridefeedback/internal/utils"
	"ridefeedback/internal/validators"
	"ridefeedback/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService services.RatingService
	log           *logger.Logger
}

func NewRatingHandler(ratingService services.RatingService, log *logger.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		log:           log,
	}
}

// CreateRating handles POST /v1/ratings. Validation runs before any
// external call so an out-of-range rating never reaches the directory or
// the store.
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req validators.RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	if errs := validators.ValidateRatingCreate(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	rating, err := h.ratingService.CreateRating(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRiderNotFound):
			utils.BadRequestResponse(c, utils.ErrNoSuchRider)
		case errors.Is(err, services.ErrTripNotCompleted):
			utils.BadRequestResponse(c, utils.ErrTripNotCompleted)
		case errors.Is(err, services.ErrVerificationUnavailable):
			utils.BadGatewayResponse(c, utils.ErrRiderVerification)
		default:
			utils.InternalServerErrorResponse(c, utils.ErrCouldNotSaveRating)
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// ListRatings handles GET /v1/ratings.
func (h *RatingHandler) ListRatings(c *gin.Context) {
	ratings, err := h.ratingService.ListRatings(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed to list ratings")
		utils.InternalServerErrorResponse(c, utils.ErrCouldNotFetchRatings)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetRating handles GET /v1/ratings/:id.
func (h *RatingHandler) GetRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidRatingID)
		return
	}

	rating, err := h.ratingService.GetRating(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrRatingNotFound) {
			utils.NotFoundByIDResponse(c, "Rating", id)
			return
		}
		h.log.WithRatingID(id).WithError(err).Error("Failed to get rating")
		utils.InternalServerErrorResponse(c, utils.ErrCouldNotFetchRatings)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// UpdateRating handles PUT /v1/ratings/:id. Only rating and comment are
// mutable; updated_at is refreshed by the store.
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidRatingID)
		return
	}

	var req validators.RatingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	if errs := validators.ValidateRatingUpdate(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	rating, err := h.ratingService.UpdateRating(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, interfaces.ErrRatingNotFound) {
			utils.NotFoundByIDResponse(c, "Rating", id)
			return
		}
		h.log.WithRatingID(id).WithError(err).Error("Failed to update rating")
		utils.InternalServerErrorResponse(c, utils.ErrCouldNotSaveRating)
		return
	}

	c.JSON(http.StatusOK, rating)
}
