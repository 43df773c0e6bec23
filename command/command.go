// Package command parses the data request grammar carried in SMS bodies:
//
//	Devices: balcony, kitchen
//	Variables: humidity, temperature
//
// Markers are matched regardless of case and every label is lowercased.
package command

import (
	"fmt"
	"strings"
)

const (
	DefaultKeyword = "UBIDOTS"

	devicesMarker   = "devices:"
	variablesMarker = "variables:"
)

type Command struct {
	Devices   []string
	Variables []string
}

type ParseError struct {
	Reason string
	Text   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Text, e.Reason)
}

// IsTrigger reports whether keyword activates a data request.
func IsTrigger(keyword string, trigger string) bool {
	return strings.EqualFold(strings.TrimSpace(keyword), trigger)
}

// Parse extracts the device and variable lists from text. A list ends at
// the end of its line or where the other marker starts.
func Parse(text string) (Command, error) {
	lower := strings.ToLower(text)

	devices, err := extractList(lower, devicesMarker, variablesMarker)
	if err != nil {
		return Command{}, &ParseError{Reason: err.Error(), Text: text}
	}

	variables, err := extractList(lower, variablesMarker, devicesMarker)
	if err != nil {
		return Command{}, &ParseError{Reason: err.Error(), Text: text}
	}

	return Command{Devices: devices, Variables: variables}, nil
}

func extractList(text string, marker string, stop string) ([]string, error) {
	start := strings.Index(text, marker)
	if start < 0 {
		return nil, fmt.Errorf("missing %q", marker)
	}

	segment := text[start+len(marker):]
	if end := strings.IndexByte(segment, '\n'); end >= 0 {
		segment = segment[:end]
	}
	if end := strings.Index(segment, stop); end >= 0 {
		segment = segment[:end]
	}

	var items []string
	for _, item := range strings.Split(segment, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("empty %q list", marker)
	}

	return items, nil
}
