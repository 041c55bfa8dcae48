package interfaces

import (
	"context"
	"errors"

	"ridefeedback/internal/models"
	"ridefeedback/internal/validators"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	List(ctx context.Context) ([]*models.Rating, error)
	Update(ctx context.Context, id int64, req *validators.RatingUpdateRequest) (*models.Rating, error)

	// Connectivity probe for the health endpoint
	Ping(ctx context.Context) error
}
