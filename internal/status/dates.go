package status

import (
	"time"
)

// dateLayout is the date-only wire format used by form fields.
const dateLayout = "2006-01-02"

// FormatDate renders a date-only value for an input field.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a date-only field value. The result is midnight UTC so
// that formatting and reparsing never drifts across a day boundary.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
