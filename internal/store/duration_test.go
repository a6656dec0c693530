package store

import (
	"testing"
	"time"
)

func TestDurationInfo(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Duration
		str   string
		iso   string
		label string
	}{
		{"zero", 0, "0:00", "PT0S", "0 seconds"},
		{"negative", -5 * time.Second, "0:00", "PT0S", "0 seconds"},
		{"seconds", 5 * time.Second, "0:05", "PT5S", "5 seconds"},
		{"one second", time.Second, "0:01", "PT1S", "1 second"},
		{"minutes", 123 * time.Second, "2:03", "PT2M3S", "2 minutes 3 seconds"},
		{"exact minute", time.Minute, "1:00", "PT1M", "1 minute"},
		{"hours", 3723 * time.Second, "1:02:03", "PT1H2M3S", "1 hour 2 minutes 3 seconds"},
		{"exact hours", 2 * time.Hour, "2:00:00", "PT2H", "2 hours"},
		{"truncates fraction", 1500 * time.Millisecond, "0:01", "PT1S", "1 second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewDurationInfo(tt.in)
			if got := info.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := info.ISO8601(); got != tt.iso {
				t.Errorf("ISO8601() = %q, want %q", got, tt.iso)
			}
			if got := info.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}
