package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ridefeedback/pkg/logger"
)

const tripStatusCompleted = "COMPLETED"

type TripClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewTripClient(baseURL string, timeout time.Duration, log *logger.Logger) *TripClient {
	return &TripClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// TripCompleted issues GET {baseURL}/{tripID} and reports whether the trip's
// status field equals COMPLETED. Any non-200 status means not completed.
func (c *TripClient) TripCompleted(ctx context.Context, tripID int64) (bool, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, tripID)
	c.log.WithField("trip_id", tripID).Debugf("[TRIP-SERVICE] GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("trip service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.WithField("trip_id", tripID).WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("[TRIP-SERVICE] trip not found or invalid status")
		return false, nil
	}

	var trip struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		return false, fmt.Errorf("failed to decode trip response: %w", err)
	}

	c.log.WithField("trip_id", tripID).Debugf("[TRIP-SERVICE] trip status: %s", trip.Status)
	return trip.Status == tripStatusCompleted, nil
}
