package postgres

import (
	"context"
	"errors"
	"fmt"

	"ridefeedback/internal/models"
	"ridefeedback/internal/repositories/interfaces"
	"ridefeedback/internal/validators"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ratingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) interfaces.RatingRepository {
	return &ratingRepository{
		pool: pool,
	}
}

// Create inserts the rating inside a transaction and reads back the
// server-assigned id and timestamps. Both timestamps are set to the same
// instant at creation.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO ratings (trip_id, rider_id, driver_id, rating, comment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING id, created_at, updated_at`,
		rating.TripID, rating.RiderID, rating.DriverID, rating.Rating, rating.Comment,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rating: %w", err)
	}

	return nil
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.pool.QueryRow(ctx,
		`SELECT id, trip_id, rider_id, driver_id, rating, comment, created_at, updated_at
		 FROM ratings WHERE id = $1`,
		id,
	).Scan(&rating.ID, &rating.TripID, &rating.RiderID, &rating.DriverID,
		&rating.Rating, &rating.Comment, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

func (r *ratingRepository) List(ctx context.Context) ([]*models.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, trip_id, rider_id, driver_id, rating, comment, created_at, updated_at
		 FROM ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]*models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(&rating.ID, &rating.TripID, &rating.RiderID, &rating.DriverID,
			&rating.Rating, &rating.Comment, &rating.CreatedAt, &rating.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ratings: %w", err)
	}

	return ratings, nil
}

// Update changes rating and/or comment and refreshes updated_at. created_at
// is never touched after the initial write.
func (r *ratingRepository) Update(ctx context.Context, id int64, req *validators.RatingUpdateRequest) (*models.Rating, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var rating models.Rating
	err = tx.QueryRow(ctx,
		`UPDATE ratings
		 SET rating = COALESCE($2, rating),
		     comment = COALESCE($3, comment),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, trip_id, rider_id, driver_id, rating, comment, created_at, updated_at`,
		id, req.Rating, req.Comment,
	).Scan(&rating.ID, &rating.TripID, &rating.RiderID, &rating.DriverID,
		&rating.Rating, &rating.Comment, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rating update: %w", err)
	}

	return &rating, nil
}

func (r *ratingRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("database round trip failed: %w", err)
	}
	return nil
}
