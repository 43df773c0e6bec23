package command

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_SingleLine(t *testing.T) {
	cmd, err := Parse("Devices: balcony, kitchen Variables: humidity, temperature")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedDevices := []string{"balcony", "kitchen"}
	if !reflect.DeepEqual(cmd.Devices, expectedDevices) {
		t.Errorf("invalid Devices, expected: %q, got: %q", expectedDevices, cmd.Devices)
	}

	expectedVariables := []string{"humidity", "temperature"}
	if !reflect.DeepEqual(cmd.Variables, expectedVariables) {
		t.Errorf("invalid Variables, expected: %q, got: %q", expectedVariables, cmd.Variables)
	}
}

func TestParse_MultiLine(t *testing.T) {
	cmd, err := Parse("UBIDOTS\r\nVariables: Temperature\r\nDEVICES: Balcony , Kitchen\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedDevices := []string{"balcony", "kitchen"}
	if !reflect.DeepEqual(cmd.Devices, expectedDevices) {
		t.Errorf("invalid Devices, expected: %q, got: %q", expectedDevices, cmd.Devices)
	}

	expectedVariables := []string{"temperature"}
	if !reflect.DeepEqual(cmd.Variables, expectedVariables) {
		t.Errorf("invalid Variables, expected: %q, got: %q", expectedVariables, cmd.Variables)
	}
}

func TestParse_TrimsAndDropsEmptyEntries(t *testing.T) {
	cmd, err := Parse("Devices: a , b,,\nVariables:  x ,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cmd.Devices, []string{"a", "b"}) {
		t.Errorf("invalid Devices, got: %q", cmd.Devices)
	}
	if !reflect.DeepEqual(cmd.Variables, []string{"x"}) {
		t.Errorf("invalid Variables, got: %q", cmd.Variables)
	}
}

func TestParse_MissingSegment(t *testing.T) {
	_, err := Parse("Devices: balcony")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a *ParseError, got: %v", err)
	}
	if parseErr.Text != "Devices: balcony" {
		t.Errorf("invalid Text, expected: %q, got: %q", "Devices: balcony", parseErr.Text)
	}
}

func TestParse_EmptyList(t *testing.T) {
	_, err := Parse("Devices: , \nVariables: humidity")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a *ParseError, got: %v", err)
	}
}

func TestIsTrigger(t *testing.T) {
	if !IsTrigger("ubidots", DefaultKeyword) {
		t.Errorf("expected lowercase keyword to match")
	}
	if !IsTrigger(" UbiDots ", DefaultKeyword) {
		t.Errorf("expected mixed case keyword to match")
	}
	if IsTrigger("HELLO", DefaultKeyword) {
		t.Errorf("expected HELLO not to match")
	}
}
