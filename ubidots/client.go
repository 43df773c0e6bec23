// Package ubidots is a small client for the Ubidots v1.6 REST API.
package ubidots

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://industrial.api.ubidots.com"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type LookupError struct {
	Device   string
	Variable string
	Status   int
	Err      error
}

func (e *LookupError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ubidots: %s/%s: status %d: %v", e.Device, e.Variable, e.Status, e.Err)
	}
	return fmt.Sprintf("ubidots: %s/%s: %v", e.Device, e.Variable, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func NewClient(baseURL, token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("ubidots: empty token")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// LastValue returns the last value of a device variable as text. Numbers
// keep the representation Ubidots sent and strings are unquoted.
func (c *Client) LastValue(ctx context.Context, device, variable string) (string, error) {
	path := "/api/v1.6/devices/" + url.PathEscape(device) + "/" + url.PathEscape(variable) + "/lv"

	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", &LookupError{Device: device, Variable: variable, Status: status, Err: err}
	}

	value, err := formatValue(body)
	if err != nil {
		return "", &LookupError{Device: device, Variable: variable, Err: err}
	}

	return value, nil
}

// SendValues posts variable values to a device, creating it if needed.
func (c *Client) SendValues(ctx context.Context, device string, values map[string]any) error {
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("ubidots: marshal values: %w", err)
	}

	_, _, err = c.do(ctx, http.MethodPost, "/api/v1.6/devices/"+url.PathEscape(device), payload)
	if err != nil {
		return fmt.Errorf("ubidots: send values to %s: %w", device, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body)))
	}

	return body, resp.StatusCode, nil
}

func formatValue(body []byte) (string, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return "", fmt.Errorf("decode last value: %w", err)
	}

	switch v := value.(type) {
	case json.Number:
		return v.String(), nil
	case string:
		return v, nil
	case nil:
		return "null", nil
	default:
		return strings.TrimSpace(string(body)), nil
	}
}
