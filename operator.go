package main

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/CedricFinance/sms_operator/interpreter"
	"github.com/CedricFinance/sms_operator/messages"
	"github.com/CedricFinance/sms_operator/metrics"
	"github.com/CedricFinance/sms_operator/model"
	"github.com/CedricFinance/sms_operator/repository"
	"github.com/slack-go/slack"
)

const outcomeSendFailed = "send_failed"

type CommandLogStore interface {
	SaveCommandLog(ctx context.Context, entry *model.CommandLog) error
}

type ChannelPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Operator runs the interpreter for each inbound event and reports what
// happened to the command log and the Slack channel when they are set up.
type Operator struct {
	Interpreter   *interpreter.Interpreter
	DefaultAPIKey string
	Store         CommandLogStore
	Slack         ChannelPoster
	Channel       string
}

func (o *Operator) HandleInbound(ctx context.Context, event model.InboundEvent) (interpreter.Outcome, error) {
	if event.APIKey == "" && !event.IsDeliveryReceipt() {
		event.APIKey = o.DefaultAPIKey
	}

	outcome, err := o.Interpreter.Handle(ctx, event)

	kind := string(outcome.Kind)
	errorText := outcome.Message
	if err != nil {
		kind = outcomeSendFailed
		errorText = err.Error()
	}
	metrics.InboundEventsTotal.WithLabelValues(kind).Inc()

	if outcome.Kind == interpreter.Receipt {
		o.recordReceipt(ctx, event)
		return outcome, err
	}

	log.Printf("message from %s handled: %s", event.MSISDN, kind)
	o.saveCommandLog(ctx, event, kind, errorText)
	o.notifyChannel(ctx, messages.CommandChannelNotifyMessage(event, kind, errorText))

	return outcome, err
}

func (o *Operator) HandleReceipt(ctx context.Context, event model.InboundEvent) error {
	o.recordReceipt(ctx, event)
	return nil
}

func (o *Operator) recordReceipt(ctx context.Context, event model.InboundEvent) {
	metrics.DeliveryReceiptsTotal.WithLabelValues(event.Status).Inc()
	log.Printf("delivery receipt for %s: %s (message %s)", event.MSISDN, event.Status, event.MessageID)

	if isUndelivered(event.Status) {
		o.notifyChannel(ctx, messages.DeliveryReceiptChannelNotifyMessage(event))
	}
}

func isUndelivered(status string) bool {
	switch strings.ToLower(status) {
	case "failed", "rejected", "expired", "undelivered":
		return true
	}
	return false
}

func (o *Operator) saveCommandLog(ctx context.Context, event model.InboundEvent, kind string, errorText string) {
	if o.Store == nil {
		return
	}

	err := o.Store.SaveCommandLog(ctx, repository.NewCommandLog(event, kind, errorText))
	if errors.Is(err, repository.DuplicateEntry) {
		log.Printf("message %s was already logged, the webhook was probably redelivered", event.MessageID)
		return
	}
	if err != nil {
		log.Printf("failed to save command log: %v", err)
	}
}

func (o *Operator) notifyChannel(ctx context.Context, message slack.Message) {
	if o.Slack == nil {
		return
	}

	_, _, err := o.Slack.PostMessageContext(ctx, o.Channel, slack.MsgOptionBlocks(message.Blocks.BlockSet...))
	if err != nil {
		log.Printf("failed to notify slack channel %s: %v", o.Channel, err)
	}
}
