package models

import (
	"time"
)

// Rating is the persisted feedback record for one trip. trip_id, rider_id
// and driver_id reference entities owned by other services; only rider_id is
// verified for existence at creation time.
type Rating struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	RiderID   int64     `json:"rider_id"`
	DriverID  int64     `json:"driver_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
