// Package opensensemap is a client for the openSenseMap HTTP API.
package opensensemap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/metrics"
	"github.com/katiamach/hivebox/internal/model"
)

// DefaultBaseURL is the public openSenseMap API.
const DefaultBaseURL = "https://api.opensensemap.org"

// Endpoint labels.
const (
	endpointBox     = "box"
	endpointSensors = "sensors"
)

// Client errors.
var (
	ErrNotFound = errors.New("senseBox not found")
	ErrRemote   = errors.New("opensensemap api error")
)

// Client fetches senseBox data from openSenseMap.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates new Client. An empty baseURL means DefaultBaseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchStation gets a senseBox with its metadata and sensors.
func (c *Client) FetchStation(ctx context.Context, stationID string) (*model.Station, error) {
	var res boxResponse
	err := c.get(ctx, endpointBox, stationID, "/boxes/"+url.PathEscape(stationID), &res)
	if err != nil {
		return nil, err
	}

	station, err := res.toModel()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrRemote, err)
	}

	return station, nil
}

// FetchStationSensors gets the sensors of a senseBox with their last measurements.
func (c *Client) FetchStationSensors(ctx context.Context, stationID string) (*model.StationReadings, error) {
	var res sensorsResponse
	err := c.get(ctx, endpointSensors, stationID, "/boxes/"+url.PathEscape(stationID)+"/sensors", &res)
	if err != nil {
		return nil, err
	}

	readings, err := res.toModel()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrRemote, err)
	}

	return readings, nil
}

// get performs a single GET request and decodes a successful JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, stationID, path string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()

		logger.WithFields(logrus.Fields{
			"endpoint":   endpoint,
			"stationID":  stationID,
			"durationMs": time.Since(start).Milliseconds(),
		}).Debugln("opensensemap request done")
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRemote, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to connect: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, stationID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrRemote, resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrRemote, err)
	}

	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
