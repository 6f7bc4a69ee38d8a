package models

import "time"

// Display layouts used at the response-serialization boundary. Collections
// store time.Time; only views carry formatted strings.
const (
	// DisplayDateTimeLayout renders a full locale-style datetime,
	// e.g. "9/12/2025, 10:23:00 AM".
	DisplayDateTimeLayout = "1/2/2006, 3:04:05 PM"
	// DisplayClockLayout renders a time of day, e.g. "10:23 AM".
	DisplayClockLayout = "03:04 PM"
	// ArrivalDateLayout renders arrival dates, e.g. "12 Oct 2023".
	ArrivalDateLayout = "02 Jan 2006"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatDateTime formats an instant for history/report display.
func FormatDateTime(t time.Time) string {
	return t.Format(DisplayDateTimeLayout)
}

// FormatClock formats an instant as a time of day for dashboard display.
func FormatClock(t time.Time) string {
	return t.Format(DisplayClockLayout)
}

// SameUTCDay reports whether two instants fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
