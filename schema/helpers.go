package schema

import "fmt"

// RouteKey joins uppercase origin and destination codes into the canonical
// route label, e.g. "SYD-MEL".
func RouteKey(origin, destination string) string {
	return origin + "-" + destination
}

// FormatHour renders an hour of day as a clock label, e.g. "07:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// WeekdayIndex returns the position of an English weekday label in the
// Monday-first week, or len(WeekdayOrder) for unknown labels so they sort last.
func WeekdayIndex(label string) int {
	for i, d := range WeekdayOrder {
		if d == label {
			return i
		}
	}
	return len(WeekdayOrder)
}

// MonthIndex returns the position of an English month label in the calendar
// year, or len(MonthOrder) for unknown labels so they sort last.
func MonthIndex(label string) int {
	for i, m := range MonthOrder {
		if m == label {
			return i
		}
	}
	return len(MonthOrder)
}
