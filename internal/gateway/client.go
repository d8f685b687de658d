package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/vehicle"
	"github.com/muurk/fleetmaint/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout (0 = wait forever)
	DefaultTimeout = 0 * time.Second

	// maxErrorBody caps how much of an error response is kept for diagnostics
	maxErrorBody = 512
)

// Client performs the two vehicle API calls against a fixed base endpoint.
// Every call is fire-once: no retries, no caching.
type Client struct {
	// BaseURL is the API prefix (e.g., "https://api.example.com/v1")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a new gateway client for baseURL.
// A trailing slash on baseURL is ignored.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  "fleetmaint/" + version.Version,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// VehiclesURL returns {base}/vehicles
func (c *Client) VehiclesURL() string {
	return c.BaseURL + "/vehicles"
}

// VehicleURL returns {base}/vehicles/{id} with id path-escaped
func (c *Client) VehicleURL(id string) string {
	return c.VehiclesURL() + "/" + url.PathEscape(id)
}

// ListVehicles fetches the full vehicle collection in server order
func (c *Client) ListVehicles(ctx context.Context) ([]vehicle.Vehicle, error) {
	target := c.VehiclesURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newRequestError(KindFetchFailed, http.MethodGet, target, err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, KindFetchFailed)
	if err != nil {
		return nil, err
	}

	var vehicles []vehicle.Vehicle
	if err := json.Unmarshal(body, &vehicles); err != nil {
		return nil, newDecodeError(KindFetchFailed, http.MethodGet, target, err)
	}
	if vehicles == nil {
		vehicles = []vehicle.Vehicle{}
	}

	logging.Debug("Vehicles fetched", zap.Int("count", len(vehicles)))
	return vehicles, nil
}

// UpdateVehicle sends patch to {base}/vehicles/{id}. The response body is
// not consumed beyond the status code.
func (c *Client) UpdateVehicle(ctx context.Context, id string, patch vehicle.Patch) error {
	target := c.VehicleURL(id)

	payload, err := json.Marshal(patch)
	if err != nil {
		return newRequestError(KindUpdateFailed, http.MethodPatch, target, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target, bytes.NewReader(payload))
	if err != nil {
		return newRequestError(KindUpdateFailed, http.MethodPatch, target, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(req, KindUpdateFailed); err != nil {
		return err
	}

	logging.Debug("Vehicle updated",
		zap.String("vehicle_id", id),
		zap.String("person", patch.Person),
		zap.String("estimated_date", patch.EstimatedDate),
	)
	return nil
}

// do sends req and returns the body of a 2xx response
func (c *Client) do(req *http.Request, kind Kind) ([]byte, error) {
	method, target := req.Method, req.URL.String()

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.LogHTTPRequest(method, target)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, newTransportError(kind, method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogHTTPResponse(method, target, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newStatusError(kind, method, target, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(kind, method, target, fmt.Errorf("failed to read response body: %w", err))
	}
	return body, nil
}
