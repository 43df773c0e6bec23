package messages

import (
	"fmt"

	"github.com/CedricFinance/sms_operator/model"
	"github.com/slack-go/slack"
)

func CommandChannelNotifyMessage(event model.InboundEvent, outcome string, errorText string) slack.Message {
	blocks := []slack.Block{
		smsMessageBlock(event),
		slack.NewContextBlock(
			"outcome",
			slack.NewTextBlockObject(
				slack.MarkdownType,
				outcomeText(outcome, errorText),
				false,
				false,
			),
		),
	}

	return slack.NewBlockMessage(blocks...)
}

func outcomeText(outcome string, errorText string) string {
	if errorText != "" {
		return fmt.Sprintf(":warning: %s: `%s`", outcome, errorText)
	}
	return fmt.Sprintf(":outbox_tray: %s", outcome)
}

func smsMessageBlock(event model.InboundEvent) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("*Command from:* %s (keyword %q)\n```\n%s\n```", event.MSISDN, event.Keyword, event.Text),
			false,
			false,
		),
		nil,
		nil,
	)
}

func DeliveryReceiptChannelNotifyMessage(event model.InboundEvent) slack.Message {
	return slack.NewBlockMessage(
		slack.NewSectionBlock(
			slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("*Reply to* %s *was not delivered:* %s (message %s)", event.MSISDN, event.Status, event.MessageID),
				false,
				false,
			),
			nil,
			nil,
		),
	)
}
