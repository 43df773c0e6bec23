package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/CedricFinance/sms_operator/interpreter"
	"github.com/CedricFinance/sms_operator/model"
)

// WebhookHandler acknowledges a provider callback with an empty 200 once
// Handler accepted the parsed message.
type WebhookHandler[T any] struct {
	Parser  func(r *http.Request) (T, error)
	Handler func(ctx context.Context, message T) error
}

func (h WebhookHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message, err := h.Parser(r)
	if err != nil {
		log.Printf("failed to parse webhook: %v", err)
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	err = h.Handler(r.Context(), message)
	if err != nil {
		log.Printf("failed to handle webhook: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

type CommandHandler struct {
	Parser  func(r *http.Request) (model.InboundEvent, error)
	Handler func(ctx context.Context, event model.InboundEvent) (interpreter.Outcome, error)
}

// ServeHTTP answers with the outcome body as JSON. Only a failed reply send
// is reported as an error so the provider does not redeliver commands that
// were answered.
func (h CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	event, err := h.Parser(r)
	if err != nil {
		log.Printf("failed to parse inbound message: %v", err)
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	outcome, err := h.Handler(r.Context(), event)
	if err != nil {
		log.Printf("failed to handle inbound message from %s: %v", event.MSISDN, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, outcome.Body())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
