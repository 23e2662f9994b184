// Package api is the token-bearing HTTP repository for the scheduling
// backend. All local/UTC time conversion happens at this seam: callers hand
// in and receive device-local HH:MM strings, the wire carries UTC.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

var (
	// ErrMissingToken is returned when a call requires authentication and no
	// token has been stored.
	ErrMissingToken = errors.New("not logged in, run 'meetly login' first")

	// ErrDeleteUnsupported marks backend versions without a delete-exception
	// endpoint; callers fall back to a neutralizing write.
	ErrDeleteUnsupported = errors.New("backend does not support deleting exceptions")
)

// Client talks to the scheduling REST backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	loc        *time.Location
}

// NewClient builds a client for the given backend. loc is the device
// location used to convert wire times (UTC) to local display times.
func NewClient(baseURL, token string, loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		loc:        loc,
	}
}

// HasToken reports whether the client carries an auth token.
func (c *Client) HasToken() bool { return c.token != "" }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an API token. The token is returned, not
// stored; token persistence is the keyring's concern.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError("login", resp)
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if decoded.Token == "" {
		return "", errors.New("login succeeded but no token was returned")
	}
	return decoded.Token, nil
}

// do issues an authenticated request and returns the response body for any
// 2xx status. Non-2xx responses map to a single descriptive error.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(method+" "+path, resp)
	}

	return io.ReadAll(resp.Body)
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusError is a non-2xx backend response, preserving the status code so
// callers can distinguish unsupported endpoints from genuine failures.
type StatusError struct {
	Op      string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	if e.Status == http.StatusUnauthorized {
		return fmt.Sprintf("%s: authentication failed, token may have expired", e.Op)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func hasStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

func apiError(op string, resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	statusErr := &StatusError{Op: op, Status: resp.StatusCode}
	var decoded errorResponse
	if err := json.Unmarshal(bodyBytes, &decoded); err == nil {
		if decoded.Message != "" {
			statusErr.Message = decoded.Message
		} else if decoded.Error != "" {
			statusErr.Message = decoded.Error
		}
	}
	return statusErr
}
