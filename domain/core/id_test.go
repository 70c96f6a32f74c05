package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseReportID tests report ID parsing
func TestParseReportID(t *testing.T) {
	tests := []struct {
		input    string
		expected ReportID
		hasError bool
	}{
		{"valid-id", ReportID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseReportID(tt.input)
		if tt.hasError {
			if err == nil {
				t.Errorf("ParseReportID(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseReportID(%q): unexpected error %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseReportID(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// TestErrorHelpers tests the sentinel error classification helpers
func TestErrorHelpers(t *testing.T) {
	if !IsInvalidInput(NewInvalidInputError("empty data")) {
		t.Error("IsInvalidInput should match wrapped ErrInvalidInput")
	}
	if !IsLengthMismatch(NewLengthMismatchError("y", 2, 3)) {
		t.Error("IsLengthMismatch should match wrapped ErrLengthMismatch")
	}
	if IsInvalidInput(ErrLengthMismatch) {
		t.Error("IsInvalidInput should not match ErrLengthMismatch")
	}
}
