package main

import "testing"

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"Humidity=50.87", "temperature=36.39"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if values["humidity"] != 50.87 {
		t.Errorf("invalid humidity, expected: %v, got: %v", 50.87, values["humidity"])
	}
	if values["temperature"] != 36.39 {
		t.Errorf("invalid temperature, expected: %v, got: %v", 36.39, values["temperature"])
	}
}

func TestParseValues_Invalid(t *testing.T) {
	for _, arg := range []string{"humidity", "=1", "humidity=wet"} {
		if _, err := parseValues([]string{arg}); err == nil {
			t.Errorf("expected an error for %q", arg)
		}
	}
}
