package messages

import "strings"

const (
	NotFoundText = "The requested data cannot be found. Please verify it and try again."
	UsageText    = "Command not recognized. Send:\nDevices: <device>, <device>\nVariables: <variable>, <variable>"
)

// Reply accumulates the text sent back for a data request:
//
//	Data requested:
//
//	Device: balcony
//	Variable: humidity = 50.87
type Reply struct {
	sb strings.Builder
}

func NewReply() *Reply {
	r := &Reply{}
	r.sb.WriteString("Data requested:\n")
	return r
}

func (r *Reply) Device(label string) {
	r.sb.WriteString("\nDevice: ")
	r.sb.WriteString(label)
}

func (r *Reply) Variable(label string, value string) {
	r.sb.WriteString("\nVariable: ")
	r.sb.WriteString(label)
	r.sb.WriteString(" = ")
	r.sb.WriteString(value)
}

func (r *Reply) EndDevice() {
	r.sb.WriteString("\n")
}

func (r *Reply) String() string {
	return r.sb.String()
}
