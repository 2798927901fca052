package message

import (
	"strings"
	"time"

	"visacrony-gateway/internal/sanitize"
)

const (
	dateLayout      = "January 2, 2006"
	timestampLayout = "January 2, 2006 at 03:04 PM"
)

var inputDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate accepts the date forms browsers send: a bare "2006-01-02" or an
// RFC 3339 timestamp. dateOnly reports the bare form, which carries no zone.
func ParseDate(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range inputDateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed, layout == "2006-01-02", true
		}
	}
	return time.Time{}, false, false
}

// FormatDate renders a browser-supplied date as "January 2, 2006".
// Empty input returns "", unparsable input is returned sanitized as-is.
func (b *Builder) FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, dateOnly, ok := ParseDate(s)
	if !ok {
		return sanitize.Text(s)
	}
	if !dateOnly {
		t = t.In(b.Location)
	}
	return t.Format(dateLayout)
}

// FormatTimestamp renders the submission time, "Not specified" when unset.
func (b *Builder) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "Not specified"
	}
	return t.In(b.Location).Format(timestampLayout)
}

// TravelDates renders "{from}" or "{from} to {to}", or "" when from is unset.
func (b *Builder) TravelDates(from, to string) string {
	f := b.FormatDate(from)
	if f == "" {
		return ""
	}
	if t := b.FormatDate(to); t != "" {
		return f + " to " + t
	}
	return f
}
