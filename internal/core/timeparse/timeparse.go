// Package timeparse turns spreadsheet timestamp cells into instants.
//
// Source systems export visit times in several shapes, most commonly a
// 12-hour clock with an explicit GMT offset. Parsing tries a fixed cascade
// and reports ok=false when no layout matches; callers decide what a
// failed cell means (typically dropping the row and counting it).
package timeparse

import (
	"strings"
	"time"
)

// clock layouts tried in order; the first match wins
var clockLayouts = []string{
	"03:04 PM GMT-07:00",
	"03:04 PM",
	"15:04",
}

// coerceLayouts is the closed best-effort list for full date-time cells.
// Order matters: more specific layouts first
var coerceLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006 03:04 PM",
	"2006-01-02",
	"02/01/2006",
}

// Clock parses a timestamp cell through the fixed fallback order.
// Clock-only layouts anchor to the zero date, which is fine for signed
// differences between two cells from the same row
func Clock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// meridiem and offset tokens are matched case-sensitively by time.Parse;
	// our clock layouts contain no letters that lowercasing would produce
	up := strings.ToUpper(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, up); err == nil {
			return t, true
		}
	}

	for _, layout := range coerceLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ReportDate parses the dd/mm/yyyy shapes report-date cells arrive in.
// Blank cells are not an error; the bool is false and callers render
// their own placeholder
func ReportDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02", "02-01-2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
