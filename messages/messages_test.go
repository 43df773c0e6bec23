package messages

import (
	"strings"
	"testing"

	"github.com/CedricFinance/sms_operator/model"
	"github.com/slack-go/slack"
)

func TestReply(t *testing.T) {
	reply := NewReply()
	reply.Device("balcony")
	reply.Variable("humidity", "50.87")
	reply.EndDevice()

	expected := "Data requested:\n\nDevice: balcony\nVariable: humidity = 50.87\n"
	if reply.String() != expected {
		t.Errorf("invalid reply, expected: %q, got: %q", expected, reply.String())
	}
}

func TestCommandChannelNotifyMessage(t *testing.T) {
	event := model.InboundEvent{MSISDN: "447700900001", Keyword: "UBIDOTS", Text: "Devices: balcony"}

	message := CommandChannelNotifyMessage(event, "lookup_failed", "ubidots: balcony/humidity: status 404")

	blocks := message.Blocks.BlockSet
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got: %d", len(blocks))
	}

	section, ok := blocks[0].(*slack.SectionBlock)
	if !ok {
		t.Fatalf("expected a section block, got: %T", blocks[0])
	}
	if !strings.Contains(section.Text.Text, "447700900001") {
		t.Errorf("expected the sender in %q", section.Text.Text)
	}

	context, ok := blocks[1].(*slack.ContextBlock)
	if !ok {
		t.Fatalf("expected a context block, got: %T", blocks[1])
	}
	text := context.ContextElements.Elements[0].(*slack.TextBlockObject).Text
	if !strings.HasPrefix(text, ":warning: lookup_failed") {
		t.Errorf("invalid outcome text, got: %q", text)
	}
}
