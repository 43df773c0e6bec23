package main

import (
	"net/http"

	"github.com/CedricFinance/sms_operator/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the provider webhooks. logs may be nil when no database
// is configured, the /commands routes are left out then.
func NewRouter(operator *Operator, logs CommandLogReader) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})
	r.Handle("/metrics", promhttp.Handler())

	inbound := CommandHandler{Parser: ParseNexmoInbound, Handler: operator.HandleInbound}
	status := WebhookHandler[model.InboundEvent]{Parser: ParseNexmoInbound, Handler: operator.HandleReceipt}

	r.Route("/webhooks", func(r chi.Router) {
		r.Method(http.MethodGet, "/inbound", inbound)
		r.Method(http.MethodPost, "/inbound", inbound)
		r.Method(http.MethodGet, "/status", status)
		r.Method(http.MethodPost, "/status", status)
		r.Method(http.MethodPost, "/twilio", CommandHandler{Parser: ParseTwilioSMS, Handler: operator.HandleInbound})
	})

	if logs != nil {
		r.Get("/commands", listCommandLogs(logs))
		r.Get("/commands/{id}", getCommandLog(logs))
	}

	return r
}
