package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ridefeedback/internal/models"
	"ridefeedback/internal/validators"
	"ridefeedback/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID    int64
	created   []*models.Rating
	createErr error
}

func (f *fakeRepo) Create(ctx context.Context, rating *models.Rating) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	rating.ID = f.nextID
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	f.created = append(f.created, rating)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("rating not found")
}

func (f *fakeRepo) List(ctx context.Context) ([]*models.Rating, error) {
	return f.created, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *validators.RatingUpdateRequest) (*models.Rating, error) {
	rating, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil {
		rating.Rating = *req.Rating
	}
	if req.Comment != nil {
		rating.Comment = req.Comment
	}
	rating.UpdatedAt = time.Now().Add(time.Second)
	return rating, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error {
	return nil
}

type fakeDirectory struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeDirectory) RiderExists(ctx context.Context, riderID int64) (bool, error) {
	f.calls++
	return f.exists, f.err
}

type fakeTripService struct {
	completed bool
	err       error
	calls     int
}

func (f *fakeTripService) TripCompleted(ctx context.Context, tripID int64) (bool, error) {
	f.calls++
	return f.completed, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel})
	require.NoError(t, err)
	return log
}

func createReq() *validators.RatingCreateRequest {
	comment := "great"
	return &validators.RatingCreateRequest{
		TripID:   1,
		RiderID:  42,
		DriverID: 7,
		Rating:   5,
		Comment:  &comment,
	}
}

func TestCreateRating(t *testing.T) {
	repo := &fakeRepo{}
	dir := &fakeDirectory{exists: true}
	svc := NewRatingService(repo, dir, &fakeTripService{}, false, testLogger(t))

	rating, err := svc.CreateRating(context.Background(), createReq())
	require.NoError(t, err)

	assert.Equal(t, int64(1), rating.ID)
	assert.Equal(t, int64(42), rating.RiderID)
	assert.Equal(t, 5, rating.Rating)
	assert.True(t, rating.CreatedAt.Equal(rating.UpdatedAt))
	assert.Len(t, repo.created, 1)

	// A repeated submission is a new record with a new id.
	again, err := svc.CreateRating(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)
	assert.Len(t, repo.created, 2)
}

func TestCreateRatingRiderNotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewRatingService(repo, &fakeDirectory{exists: false}, &fakeTripService{}, false, testLogger(t))

	_, err := svc.CreateRating(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrRiderNotFound)
	assert.Empty(t, repo.created)
}

func TestCreateRatingDirectoryUnreachable(t *testing.T) {
	repo := &fakeRepo{}
	dir := &fakeDirectory{err: errors.New("connection refused")}
	svc := NewRatingService(repo, dir, &fakeTripService{}, false, testLogger(t))

	_, err := svc.CreateRating(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrVerificationUnavailable)
	assert.Empty(t, repo.created)
}

func TestCreateRatingPersistenceFault(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("commit failed")}
	svc := NewRatingService(repo, &fakeDirectory{exists: true}, &fakeTripService{}, false, testLogger(t))

	_, err := svc.CreateRating(context.Background(), createReq())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRiderNotFound)
	assert.NotErrorIs(t, err, ErrVerificationUnavailable)
}

func TestCreateRatingTripGateDisabled(t *testing.T) {
	trip := &fakeTripService{completed: false}
	svc := NewRatingService(&fakeRepo{}, &fakeDirectory{exists: true}, trip, false, testLogger(t))

	_, err := svc.CreateRating(context.Background(), createReq())
	require.NoError(t, err)
	assert.Zero(t, trip.calls, "trip service must not be called while the gate is disabled")
}

func TestCreateRatingTripGateEnabled(t *testing.T) {
	repo := &fakeRepo{}
	trip := &fakeTripService{completed: false}
	svc := NewRatingService(repo, &fakeDirectory{exists: true}, trip, true, testLogger(t))

	_, err := svc.CreateRating(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrTripNotCompleted)
	assert.Equal(t, 1, trip.calls)
	assert.Empty(t, repo.created)

	trip.completed = true
	rating, err := svc.CreateRating(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rating.ID)
}

func TestUpdateRating(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewRatingService(repo, &fakeDirectory{exists: true}, &fakeTripService{}, false, testLogger(t))

	created, err := svc.CreateRating(context.Background(), createReq())
	require.NoError(t, err)

	newRating := 2
	updated, err := svc.UpdateRating(context.Background(), created.ID, &validators.RatingUpdateRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}
