// Package nexmo sends SMS replies through the Vonage (Nexmo) Messages API.
package nexmo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://api.nexmo.com"

	ChannelSMS  = "sms"
	ContentText = "text"
)

type Client struct {
	baseURL    string
	apiSecret  string
	httpClient *http.Client
}

// OutboundMessage is a single reply. APIKey comes from the inbound
// webhook and is paired with the secret the client was built with.
type OutboundMessage struct {
	APIKey string
	Type   string
	To     string
	From   string
	Text   string
}

type SendResponse struct {
	MessageUUID string          `json:"message_uuid"`
	ClientRef   string          `json:"-"`
	Raw         json.RawMessage `json:"-"`
}

type SendError struct {
	Status int
	Body   string
	Err    error
}

func (e *SendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("nexmo: status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("nexmo: %v", e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func NewClient(baseURL, apiSecret string) (*Client, error) {
	if apiSecret == "" {
		return nil, errors.New("nexmo: empty api secret")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type endpoint struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messageRequest struct {
	From    endpoint `json:"from"`
	To      endpoint `json:"to"`
	Message struct {
		Content   content `json:"content"`
		ClientRef string  `json:"client_ref,omitempty"`
	} `json:"message"`
}

func (c *Client) Send(ctx context.Context, msg OutboundMessage) (*SendResponse, error) {
	contentType := msg.Type
	if contentType == "" {
		contentType = ContentText
	}

	var payload messageRequest
	payload.From = endpoint{Type: ChannelSMS, Number: msg.From}
	payload.To = endpoint{Type: ChannelSMS, Number: msg.To}
	payload.Message.Content = content{Type: contentType, Text: msg.Text}
	payload.Message.ClientRef = uuid.New().String()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SendError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v0.1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, &SendError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.SetBasicAuth(msg.APIKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SendError{Err: fmt.Errorf("http post: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SendError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SendError{Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	result := SendResponse{ClientRef: payload.Message.ClientRef, Raw: respBody}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &SendError{Status: resp.StatusCode, Body: string(respBody), Err: err}
	}

	return &result, nil
}
