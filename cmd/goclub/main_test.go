package main

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		value    string
		expected *time.Time
		wantErr  bool
	}{
		{"", nil, false},
		{"2024-01-03", ptr(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)), false},
		{"3.1.2024", nil, true},
		{"2024-13-01", nil, true},
	}

	for _, tt := range tests {
		result, err := parseDay("from", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDay(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if (result == nil) != (tt.expected == nil) {
			t.Errorf("parseDay(%q) = %v, expected %v", tt.value, result, tt.expected)
			continue
		}
		if result != nil && !result.Equal(*tt.expected) {
			t.Errorf("parseDay(%q) = %v, expected %v", tt.value, *result, *tt.expected)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }
