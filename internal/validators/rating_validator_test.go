package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRatingCreate(t *testing.T) {
	comment := "great"
	tests := []struct {
		name      string
		req       RatingCreateRequest
		wantField string
	}{
		{
			name: "valid",
			req:  RatingCreateRequest{TripID: 1, RiderID: 42, DriverID: 7, Rating: 5, Comment: &comment},
		},
		{
			name: "valid without comment",
			req:  RatingCreateRequest{TripID: 1, RiderID: 42, DriverID: 7, Rating: 1},
		},
		{
			name:      "rating above bound",
			req:       RatingCreateRequest{TripID: 1, RiderID: 42, DriverID: 7, Rating: 6},
			wantField: "Rating",
		},
		{
			name:      "rating below bound",
			req:       RatingCreateRequest{TripID: 1, RiderID: 42, DriverID: 7, Rating: 0},
			wantField: "Rating",
		},
		{
			name:      "missing rider",
			req:       RatingCreateRequest{TripID: 1, DriverID: 7, Rating: 3},
			wantField: "RiderID",
		},
		{
			name:      "negative trip id",
			req:       RatingCreateRequest{TripID: -1, RiderID: 42, DriverID: 7, Rating: 3},
			wantField: "TripID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRatingCreate(&tt.req)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected error on field %s, got %v", tt.wantField, errs)
		})
	}
}

func TestValidateRatingUpdate(t *testing.T) {
	three := 3
	six := 6

	assert.Empty(t, ValidateRatingUpdate(&RatingUpdateRequest{}))
	assert.Empty(t, ValidateRatingUpdate(&RatingUpdateRequest{Rating: &three}))

	errs := ValidateRatingUpdate(&RatingUpdateRequest{Rating: &six})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "Rating", errs[0].Field)
}
