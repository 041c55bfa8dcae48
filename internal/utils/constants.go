package utils

// Response statuses
const (
	StatusError = "error"
)

// User-visible error messages. The create-path messages match the wire
// contract consumers already depend on.
const (
	ErrNoSuchRider          = "No such rider found"
	ErrTripNotCompleted     = "Trip is not completed yet"
	ErrRiderVerification    = "Rider verification unavailable"
	ErrCouldNotSaveRating   = "Could not save rating to database."
	ErrCouldNotFetchRatings = "Failed to retrieve ratings from the database."
	ErrValidationFailed     = "Validation failed"
	ErrInvalidRatingID      = "Invalid rating ID"
)

// Database health states reported by /health
const (
	DatabaseOK        = "ok"
	DatabaseUnhealthy = "unhealthy"
)
