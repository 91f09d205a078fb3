package services

import (
	"testing"
	"time"
)

func clockAt(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
	}
}

func TestHoursService_SameDayWindow(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		wantOpen bool
	}{
		{"before opening", 5, 59, false},
		{"at opening", 6, 0, true},
		{"midday", 12, 0, true},
		{"at closing", 22, 0, true},
		{"after closing", 22, 1, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := NewHoursServiceAt(clockAt(test.hour, test.minute))

			isOpen, label := service.IsOpen("06:00 - 22:00")

			if isOpen != test.wantOpen {
				t.Errorf("Expected open=%v, got %v", test.wantOpen, isOpen)
			}
			wantLabel := OpenStatusClosed
			if test.wantOpen {
				wantLabel = OpenStatusOpen
			}
			if label != wantLabel {
				t.Errorf("Expected label %q, got %q", wantLabel, label)
			}
		})
	}
}

func TestHoursService_MidnightWrapWindow(t *testing.T) {
	// A 22:00 - 06:00 window spans midnight
	tests := []struct {
		name     string
		hour     int
		minute   int
		wantOpen bool
	}{
		{"late evening", 23, 0, true},
		{"at opening", 22, 0, true},
		{"early morning", 3, 0, true},
		{"at closing", 6, 0, true},
		{"midday", 12, 0, false},
		{"just after closing", 6, 1, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := NewHoursServiceAt(clockAt(test.hour, test.minute))

			isOpen, _ := service.IsOpen("22:00 - 06:00")

			if isOpen != test.wantOpen {
				t.Errorf("Expected open=%v, got %v", test.wantOpen, isOpen)
			}
		})
	}
}

func TestHoursService_MalformedSpecsFailClosed(t *testing.T) {
	service := NewHoursServiceAt(clockAt(12, 0))

	specs := []string{
		"",
		"always open",
		"06:00-22:00",
		"06:00 - 22:00 - 23:00",
		"25:00 - 26:00",
		"06:60 - 22:00",
		"six - ten",
	}

	for _, spec := range specs {
		isOpen, label := service.IsOpen(spec)
		if isOpen {
			t.Errorf("Expected malformed spec %q to report closed", spec)
		}
		if label != OpenStatusClosed {
			t.Errorf("Expected closed label for %q, got %q", spec, label)
		}
	}
}
