package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ridefeedback/pkg/logger"
)

type RiderClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewRiderClient(baseURL string, timeout time.Duration, log *logger.Logger) *RiderClient {
	return &RiderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// RiderExists issues GET {baseURL}/{riderID}. A 200 means the rider exists;
// any other status means the directory answered and the rider is absent.
// Transport failures are returned as errors so the caller can tell an
// unreachable directory apart from a confirmed not-found.
func (c *RiderClient) RiderExists(ctx context.Context, riderID int64) (bool, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, riderID)
	c.log.WithRiderID(riderID).Debugf("[RIDER-SERVICE] GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("rider directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		c.log.WithRiderID(riderID).Debug("[RIDER-SERVICE] rider found")
		return true, nil
	}

	body, _ := io.ReadAll(resp.Body)
	c.log.WithRiderID(riderID).WithFields(map[string]interface{}{
		"status": resp.StatusCode,
		"body":   string(body),
	}).Warn("[RIDER-SERVICE] rider not found")

	return false, nil
}
