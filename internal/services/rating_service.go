package services

import (
	"context"
	"errors"
	"fmt"

	"ridefeedback/internal/models"
	"ridefeedback/internal/repositories/interfaces"
	"ridefeedback/internal/validators"
	"ridefeedback/pkg/clients"
	"ridefeedback/pkg/logger"
)

var (
	// ErrRiderNotFound means the rider directory answered and the rider
	// does not exist.
	ErrRiderNotFound = errors.New("no such rider found")

	// ErrVerificationUnavailable means the rider directory could not be
	// reached, so existence is unknown.
	ErrVerificationUnavailable = errors.New("rider verification unavailable")

	// ErrTripNotCompleted means the trip gate is enabled and the trip has
	// not finished yet.
	ErrTripNotCompleted = errors.New("trip is not completed yet")
)

type RatingService interface {
	CreateRating(ctx context.Context, req *validators.RatingCreateRequest) (*models.Rating, error)
	GetRating(ctx context.Context, id int64) (*models.Rating, error)
	ListRatings(ctx context.Context) ([]*models.Rating, error)
	UpdateRating(ctx context.Context, id int64, req *validators.RatingUpdateRequest) (*models.Rating, error)
	HealthCheck(ctx context.Context) error
}

type ratingService struct {
	repo             interfaces.RatingRepository
	riderDirectory   clients.RiderDirectory
	tripService      clients.TripService
	tripCheckEnabled bool
	log              *logger.Logger
}

func NewRatingService(
	repo interfaces.RatingRepository,
	riderDirectory clients.RiderDirectory,
	tripService clients.TripService,
	tripCheckEnabled bool,
	log *logger.Logger,
) RatingService {
	return &ratingService{
		repo:             repo,
		riderDirectory:   riderDirectory,
		tripService:      tripService,
		tripCheckEnabled: tripCheckEnabled,
		log:              log,
	}
}

// CreateRating runs the create flow: rider verification, the optional trip
// gate, then the transactional write. Steps run strictly in order; the first
// failure is terminal.
func (s *ratingService) CreateRating(ctx context.Context, req *validators.RatingCreateRequest) (*models.Rating, error) {
	log := s.log.WithRiderID(req.RiderID)

	exists, err := s.riderDirectory.RiderExists(ctx, req.RiderID)
	if err != nil {
		log.WithError(err).Error("Rider verification failed: directory unreachable")
		return nil, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	if !exists {
		log.Warn("Request rejected: rider not found")
		return nil, ErrRiderNotFound
	}

	if s.tripCheckEnabled {
		completed, err := s.tripService.TripCompleted(ctx, req.TripID)
		if err != nil {
			log.WithError(err).Error("Trip verification failed: service unreachable")
			return nil, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
		}
		if !completed {
			log.WithField("trip_id", req.TripID).Warn("Request rejected: trip not completed")
			return nil, ErrTripNotCompleted
		}
	}

	rating := &models.Rating{
		TripID:   req.TripID,
		RiderID:  req.RiderID,
		DriverID: req.DriverID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		log.WithError(err).Error("Failed to commit rating to database")
		return nil, err
	}

	log.WithRatingID(rating.ID).Info("Rating created")
	return rating, nil
}

func (s *ratingService) GetRating(ctx context.Context, id int64) (*models.Rating, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ratingService) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	return s.repo.List(ctx)
}

func (s *ratingService) UpdateRating(ctx context.Context, id int64, req *validators.RatingUpdateRequest) (*models.Rating, error) {
	rating, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.WithRatingID(id).Info("Rating updated")
	return rating, nil
}

func (s *ratingService) HealthCheck(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
