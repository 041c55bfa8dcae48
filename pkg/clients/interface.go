package clients

import (
	"context"
)

// RiderDirectory answers rider-existence queries. A (false, nil) return
// means the directory confirmed the rider is absent; a non-nil error means
// the directory could not be reached, which is a different outcome.
type RiderDirectory interface {
	RiderExists(ctx context.Context, riderID int64) (bool, error)
}

// TripService reports whether a trip has completed.
type TripService interface {
	TripCompleted(ctx context.Context, tripID int64) (bool, error)
}
