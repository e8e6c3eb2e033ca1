package workflow

// NormalizeDateTime brings a datetime-local value to second precision
// (YYYY-MM-DDTHH:mm:ss), the form the booking service expects.
// Minute precision gains ":00"; longer values are cut to seconds; other inputs pass through.
func NormalizeDateTime(s string) string {
	switch {
	case len(s) == 16:
		return s + ":00"
	case len(s) > 19:
		return s[:19]
	default:
		return s
	}
}
