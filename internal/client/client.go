package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfa-project/specgen/internal/models"
)

// ErrSessionExpired is returned when the API rejects the bearer token.
// Callers should discard the session and prompt the user to log in again.
var ErrSessionExpired = errors.New("session expired")

// ErrPersistence wraps all other persistence failures (network errors,
// server errors, unexpected status codes).
var ErrPersistence = errors.New("persistence error")

// Client handles communication with the specgen REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given API base URL. The token may be empty
// for unauthenticated calls; SetToken installs one after login.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently installed bearer token.
func (c *Client) Token() string {
	return c.token
}

// ListSpecifications fetches all specifications owned by the authenticated user.
func (c *Client) ListSpecifications(ctx context.Context) ([]models.Specification, error) {
	var specs []models.Specification
	if err := c.do(ctx, http.MethodGet, "/api/specifications", nil, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// GetSpecification fetches a single specification by ID.
func (c *Client) GetSpecification(ctx context.Context, id string) (models.Specification, error) {
	var spec models.Specification
	if err := c.do(ctx, http.MethodGet, "/api/specifications/"+id, nil, &spec); err != nil {
		return models.Specification{}, err
	}
	return spec, nil
}

// CreateSpecification persists a new specification and returns the stored
// copy, including its server-assigned ID.
func (c *Client) CreateSpecification(ctx context.Context, spec models.Specification) (models.Specification, error) {
	var created models.Specification
	if err := c.do(ctx, http.MethodPost, "/api/specifications", spec, &created); err != nil {
		return models.Specification{}, err
	}
	return created, nil
}

// UpdateSpecification replaces an existing specification.
func (c *Client) UpdateSpecification(ctx context.Context, spec models.Specification) (models.Specification, error) {
	if spec.ID == "" {
		return models.Specification{}, fmt.Errorf("%w: update requires a persisted specification", ErrPersistence)
	}
	var updated models.Specification
	if err := c.do(ctx, http.MethodPut, "/api/specifications/"+spec.ID, spec, &updated); err != nil {
		return models.Specification{}, err
	}
	return updated, nil
}

// DeleteSpecification removes a specification by ID.
func (c *Client) DeleteSpecification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/specifications/"+id, nil, nil)
}

// do builds and executes an authenticated JSON request. A 403 from the
// server maps to ErrSessionExpired; any other non-2xx status maps to
// ErrPersistence with the response body attached.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrPersistence, err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrPersistence, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrPersistence, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("%w: server returned status %d", ErrPersistence, resp.StatusCode)
		}
		return fmt.Errorf("%w: server returned status %d: %s", ErrPersistence, resp.StatusCode, string(bodyBytes))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrPersistence, err)
		}
	}

	return nil
}
