package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/CedricFinance/sms_operator/model"
)

// ParseTwilioSMS maps a Twilio messaging webhook to an InboundEvent. Twilio
// has no keyword field, so the first word of the body is used, the way
// Vonage derives it.
func ParseTwilioSMS(r *http.Request) (model.InboundEvent, error) {
	err := r.ParseForm()
	if err != nil {
		return model.InboundEvent{}, fmt.Errorf("failed to parse request form data: %w", err)
	}

	body := r.FormValue("Body")

	event := model.InboundEvent{
		Keyword:   firstWord(body),
		MSISDN:    strings.TrimPrefix(r.FormValue("From"), "+"),
		Text:      body,
		To:        strings.TrimPrefix(r.FormValue("To"), "+"),
		Type:      "text",
		Status:    r.FormValue("MessageStatus"),
		MessageID: r.FormValue("MessageSid"),
	}

	return event, nil
}

func firstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
