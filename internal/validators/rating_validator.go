package validators

type RatingCreateRequest struct {
	TripID   int64   `json:"trip_id" validate:"required,gt=0"`
	RiderID  int64   `json:"rider_id" validate:"required,gt=0"`
	DriverID int64   `json:"driver_id" validate:"required,gt=0"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

type RatingUpdateRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ValidateRatingCreate checks the rating bound here, before any external
// call or write is attempted. The storage constraint stays as a second line
// of defense.
func ValidateRatingCreate(req *RatingCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateRatingUpdate(req *RatingUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
