package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/CedricFinance/sms_operator/model"
)

// ParseNexmoInbound decodes an inbound SMS or delivery receipt webhook.
// Vonage sends them as a query string (GET), a form or a JSON body (POST).
func ParseNexmoInbound(r *http.Request) (model.InboundEvent, error) {
	if r.Method == http.MethodGet {
		return nexmoEventFromValues(r.URL.Query()), nil
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		err := r.ParseForm()
		if err != nil {
			return model.InboundEvent{}, fmt.Errorf("failed to parse request form data: %w", err)
		}
		return nexmoEventFromValues(r.PostForm), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return model.InboundEvent{}, fmt.Errorf("failed to read request body: %w", err)
	}

	var event model.InboundEvent

	err = json.Unmarshal(body, &event)
	if err != nil {
		return model.InboundEvent{}, fmt.Errorf("failed to parse request body: %w", err)
	}
	event.Raw = body

	return event, nil
}

func nexmoEventFromValues(values url.Values) model.InboundEvent {
	return model.InboundEvent{
		Raw:              rawValues(values),
		APIKey:           values.Get("api-key"),
		Keyword:          values.Get("keyword"),
		MSISDN:           values.Get("msisdn"),
		Text:             values.Get("text"),
		To:               values.Get("to"),
		Type:             values.Get("type"),
		Status:           values.Get("status"),
		MessageID:        values.Get("messageId"),
		MessageTimestamp: values.Get("message-timestamp"),
	}
}

// rawValues keeps every query or form field, first value only, the way
// Vonage sends them.
func rawValues(values url.Values) json.RawMessage {
	fields := make(map[string]string, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return raw
}
