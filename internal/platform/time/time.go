// Package time contains time related helpers
package time

import (
	"fmt"
	"time"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// MinutesOf returns d as fractional minutes
func MinutesOf(d time.Duration) float64 { return d.Minutes() }

// FormatHM renders a duration as "1h 05m" / "45m" / "-1h 30m" for report surfaces.
// Seconds are truncated toward zero before formatting
func FormatHM(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	total := int(d.Minutes())
	h, m := total/60, total%60
	var s string
	switch {
	case h > 0:
		s = fmt.Sprintf("%dh %02dm", h, m)
	default:
		s = fmt.Sprintf("%dm", m)
	}
	if neg {
		return "-" + s
	}
	return s
}
