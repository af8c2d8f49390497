package format

import "time"

// DefaultDateLayout matches the medium date-time format the store backend
// shows to support agents.
const DefaultDateLayout = "Jan 2, 2006 3:04:05 PM"

// DateFormatter renders store timestamps in the display timezone.
type DateFormatter struct {
	layout string
	loc    *time.Location
}

// NewDateFormatter builds a formatter for the named IANA timezone. An empty
// layout falls back to DefaultDateLayout.
func NewDateFormatter(layout, timezone string) (*DateFormatter, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := time.UTC
	if timezone != "" {
		parsed, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, err
		}
		loc = parsed
	}
	return &DateFormatter{layout: layout, loc: loc}, nil
}

// Format renders t, or "" for the zero time (missing column).
func (f *DateFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format(f.layout)
}
