// Package interpreter answers SMS data requests: it parses the command,
// fetches every device/variable last value in order and replies to the
// sender with a single message.
package interpreter

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/CedricFinance/sms_operator/command"
	"github.com/CedricFinance/sms_operator/messages"
	"github.com/CedricFinance/sms_operator/metrics"
	"github.com/CedricFinance/sms_operator/model"
	"github.com/CedricFinance/sms_operator/nexmo"
)

type ValueLookup interface {
	LastValue(ctx context.Context, device, variable string) (string, error)
}

type Sender interface {
	Send(ctx context.Context, msg nexmo.OutboundMessage) (*nexmo.SendResponse, error)
}

type Kind string

const (
	Receipt      Kind = "receipt"
	Sent         Kind = "sent"
	LookupFailed Kind = "lookup_failed"
	Rejected     Kind = "rejected"
)

type Outcome struct {
	Kind     Kind
	Event    model.InboundEvent
	Message  string
	Response *nexmo.SendResponse
}

// Body is what the webhook answers with: the receipt as received, the provider
// response of the reply, or {"message": ...} when nothing was fetched.
func (o Outcome) Body() any {
	switch o.Kind {
	case Receipt:
		if len(o.Event.Raw) > 0 {
			return o.Event.Raw
		}
		return o.Event
	case Sent:
		if o.Response != nil && len(o.Response.Raw) > 0 {
			return o.Response.Raw
		}
		return o.Response
	default:
		return messageBody{Message: o.Message}
	}
}

type messageBody struct {
	Message string `json:"message"`
}

type Interpreter struct {
	lookup  ValueLookup
	sender  Sender
	keyword string
}

func New(lookup ValueLookup, sender Sender, keyword string) *Interpreter {
	if keyword == "" {
		keyword = command.DefaultKeyword
	}
	return &Interpreter{
		lookup:  lookup,
		sender:  sender,
		keyword: keyword,
	}
}

func (i *Interpreter) Handle(ctx context.Context, event model.InboundEvent) (Outcome, error) {
	if event.IsDeliveryReceipt() {
		return Outcome{Kind: Receipt, Event: event}, nil
	}

	if !command.IsTrigger(event.Keyword, i.keyword) {
		return i.reject(ctx, event, fmt.Sprintf("unknown keyword %q", event.Keyword)), nil
	}

	cmd, err := command.Parse(event.Text)
	if err != nil {
		return i.reject(ctx, event, err.Error()), nil
	}

	reply := messages.NewReply()
	for _, device := range cmd.Devices {
		reply.Device(device)
		for _, variable := range cmd.Variables {
			value, err := i.lastValue(ctx, device, variable)
			if err != nil {
				log.Printf("lookup failed for %s: %v", event.MSISDN, err)
				if _, sendErr := i.send(ctx, event, messages.NotFoundText, "not_found"); sendErr != nil {
					log.Printf("failed to send not found reply to %s: %v", event.MSISDN, sendErr)
				}
				return Outcome{Kind: LookupFailed, Message: err.Error()}, nil
			}
			reply.Variable(variable, value)
		}
		reply.EndDevice()
	}

	resp, err := i.send(ctx, event, reply.String(), "data")
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to send reply to %s: %w", event.MSISDN, err)
	}

	return Outcome{Kind: Sent, Response: resp}, nil
}

func (i *Interpreter) reject(ctx context.Context, event model.InboundEvent, reason string) Outcome {
	log.Printf("rejected message from %s: %s", event.MSISDN, reason)
	if _, err := i.send(ctx, event, messages.UsageText, "usage"); err != nil {
		log.Printf("failed to send usage reply to %s: %v", event.MSISDN, err)
	}
	return Outcome{Kind: Rejected, Message: reason}
}

func (i *Interpreter) lastValue(ctx context.Context, device, variable string) (string, error) {
	start := time.Now()
	value, err := i.lookup.LastValue(ctx, device, variable)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())
	metrics.LookupsTotal.WithLabelValues(metrics.Result(err)).Inc()
	return value, err
}

// send replies to the sender of event, from the number it was sent to.
func (i *Interpreter) send(ctx context.Context, event model.InboundEvent, text string, kind string) (*nexmo.SendResponse, error) {
	resp, err := i.sender.Send(ctx, nexmo.OutboundMessage{
		APIKey: event.APIKey,
		Type:   event.Type,
		To:     event.MSISDN,
		From:   event.To,
		Text:   text,
	})
	metrics.RepliesTotal.WithLabelValues(kind, metrics.Result(err)).Inc()
	return resp, err
}
