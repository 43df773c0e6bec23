package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	InboundEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_operator_inbound_events_total",
			Help: "Total number of inbound webhook events by outcome",
		},
		[]string{"outcome"},
	)

	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_operator_lookups_total",
			Help: "Total number of Ubidots last value lookups",
		},
		[]string{"result"},
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sms_operator_lookup_duration_seconds",
			Help:    "Ubidots last value lookup duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_operator_replies_total",
			Help: "Total number of SMS replies sent by kind and result",
		},
		[]string{"kind", "result"},
	)

	DeliveryReceiptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_operator_delivery_receipts_total",
			Help: "Total number of delivery receipts by status",
		},
		[]string{"status"},
	)
)

func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
