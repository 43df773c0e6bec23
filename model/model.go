package model

import (
	"encoding/json"
	"time"
)

// InboundEvent is a Vonage inbound SMS webhook payload. Delivery receipts
// arrive on the same shape with Status set. Raw holds the payload as it was
// received, fields this struct does not model included.
type InboundEvent struct {
	APIKey           string `json:"api-key,omitempty"`
	Keyword          string `json:"keyword,omitempty"`
	MSISDN           string `json:"msisdn,omitempty"`
	Text             string `json:"text,omitempty"`
	To               string `json:"to,omitempty"`
	Type             string `json:"type,omitempty"`
	Status           string `json:"status,omitempty"`
	MessageID        string `json:"messageId,omitempty"`
	MessageTimestamp string `json:"message-timestamp,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (e InboundEvent) IsDeliveryReceipt() bool {
	return e.Status != ""
}

type CommandLog struct {
	Id        string
	MSISDN    string
	Keyword   string
	Text      string
	Outcome   string
	Error     string
	CreatedAt time.Time
}

func (l CommandLog) Failed() bool {
	return l.Error != ""
}
