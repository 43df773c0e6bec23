package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestParseNexmoInbound_POST(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "http://localhost", strings.NewReader("{ \"api-key\": \"abcd1234\", \"keyword\": \"UBIDOTS\", \"text\": \"UBIDOTS Devices: balcony\", \"to\": \"447700900000\", \"msisdn\": \"447700900001\", \"type\": \"text\", \"messageId\": \"0A0000000123ABCD1\" }"))
	r.Header.Set("Content-Type", "application/json")

	event, err := ParseNexmoInbound(r)
	if err != nil {
		t.Fatalf("failed to parse incoming SMS: %v", err)
	}

	if event.Text != "UBIDOTS Devices: balcony" {
		t.Errorf("invalid Text, expected: %q, got: %q", "UBIDOTS Devices: balcony", event.Text)
	}
	if event.MSISDN != "447700900001" {
		t.Errorf("invalid MSISDN, expected: %q, got: %q", "447700900001", event.MSISDN)
	}
	if event.APIKey != "abcd1234" {
		t.Errorf("invalid APIKey, expected: %q, got: %q", "abcd1234", event.APIKey)
	}
	if event.Keyword != "UBIDOTS" {
		t.Errorf("invalid Keyword, expected: %q, got: %q", "UBIDOTS", event.Keyword)
	}
	if event.MessageID != "0A0000000123ABCD1" {
		t.Errorf("invalid MessageID, expected: %q, got: %q", "0A0000000123ABCD1", event.MessageID)
	}
	if event.IsDeliveryReceipt() {
		t.Errorf("expected an inbound message, not a delivery receipt")
	}
}

func TestParseNexmoInbound_GET(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "http://localhost?text=HelloWorld&msisdn=447700900001&to=447700900000&keyword=HELLOWORLD&api-key=abcd1234&type=text", nil)

	event, err := ParseNexmoInbound(r)
	if err != nil {
		t.Fatalf("failed to parse incoming SMS: %v", err)
	}

	if event.Text != "HelloWorld" {
		t.Errorf("invalid Text, expected: %q, got: %q", "HelloWorld", event.Text)
	}
	if event.MSISDN != "447700900001" {
		t.Errorf("invalid MSISDN, expected: %q, got: %q", "447700900001", event.MSISDN)
	}
	if event.To != "447700900000" {
		t.Errorf("invalid To, expected: %q, got: %q", "447700900000", event.To)
	}
	if event.Keyword != "HELLOWORLD" {
		t.Errorf("invalid Keyword, expected: %q, got: %q", "HELLOWORLD", event.Keyword)
	}
}

func TestParseNexmoInbound_Form(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "http://localhost", strings.NewReader("msisdn=447700900001&status=delivered&messageId=0A0000000123ABCD1&message-timestamp=2020-06-24+16%3A49%3A43"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	event, err := ParseNexmoInbound(r)
	if err != nil {
		t.Fatalf("failed to parse delivery receipt: %v", err)
	}

	if !event.IsDeliveryReceipt() {
		t.Errorf("expected a delivery receipt")
	}
	if event.Status != "delivered" {
		t.Errorf("invalid Status, expected: %q, got: %q", "delivered", event.Status)
	}
	if event.MessageTimestamp != "2020-06-24 16:49:43" {
		t.Errorf("invalid MessageTimestamp, expected: %q, got: %q", "2020-06-24 16:49:43", event.MessageTimestamp)
	}
}

func TestParseNexmoInbound_InvalidJSON(t *testing.T) {
	r, _ := http.NewRequest(http.MethodPost, "http://localhost", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")

	if _, err := ParseNexmoInbound(r); err == nil {
		t.Errorf("expected an error for an invalid body")
	}
}

func TestParseNexmoInbound_KeepsRawPayload(t *testing.T) {
	body := `{"msisdn":"447700900001","to":"447700900000","network-code":"23410","messageId":"0A0000000123ABCD1","price":"0.03330000","status":"delivered","scts":"2001011400","err-code":"0","api-key":"abcd1234","message-timestamp":"2020-01-01 12:00:00"}`
	r, _ := http.NewRequest(http.MethodPost, "http://localhost", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	event, err := ParseNexmoInbound(r)
	if err != nil {
		t.Fatalf("failed to parse delivery receipt: %v", err)
	}

	if string(event.Raw) != body {
		t.Errorf("invalid Raw, expected: %s, got: %s", body, event.Raw)
	}
	if event.Status != "delivered" {
		t.Errorf("invalid Status, expected: %q, got: %q", "delivered", event.Status)
	}
}

func TestParseNexmoInbound_GETKeepsRawPayload(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "http://localhost?msisdn=447700900001&status=delivered&err-code=0&price=0.03330000", nil)

	event, err := ParseNexmoInbound(r)
	if err != nil {
		t.Fatalf("failed to parse delivery receipt: %v", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(event.Raw, &raw); err != nil {
		t.Fatalf("failed to decode Raw: %v", err)
	}
	if raw["err-code"] != "0" || raw["price"] != "0.03330000" {
		t.Errorf("expected unmodelled fields in Raw, got: %v", raw)
	}
	if len(raw) != 4 {
		t.Errorf("invalid Raw field count, expected: 4, got: %d", len(raw))
	}
}
