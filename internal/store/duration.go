package store

import (
	"fmt"
	"strings"
	"time"
)

// DurationInfo splits a media duration into display units.
type DurationInfo struct {
	Hours   int
	Minutes int
	Seconds int
}

// NewDurationInfo truncates d to whole seconds. Negative durations are zero.
func NewDurationInfo(d time.Duration) DurationInfo {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return DurationInfo{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// String formats as the player shows it: 1:02:03, or 2:03 under an hour.
func (i DurationInfo) String() string {
	if i.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", i.Hours, i.Minutes, i.Seconds)
	}
	return fmt.Sprintf("%d:%02d", i.Minutes, i.Seconds)
}

// ISO8601 formats as an ISO-8601 duration, e.g. PT1H2M3S.
func (i DurationInfo) ISO8601() string {
	var b strings.Builder
	b.WriteString("PT")
	if i.Hours > 0 {
		fmt.Fprintf(&b, "%dH", i.Hours)
	}
	if i.Minutes > 0 {
		fmt.Fprintf(&b, "%dM", i.Minutes)
	}
	if i.Seconds > 0 || (i.Hours == 0 && i.Minutes == 0) {
		fmt.Fprintf(&b, "%dS", i.Seconds)
	}
	return b.String()
}

// Label spells the duration out for screen readers: "1 hour 2 minutes 3 seconds".
func (i DurationInfo) Label() string {
	var parts []string
	if i.Hours > 0 {
		parts = append(parts, plural(i.Hours, "hour"))
	}
	if i.Minutes > 0 {
		parts = append(parts, plural(i.Minutes, "minute"))
	}
	if i.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, plural(i.Seconds, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
