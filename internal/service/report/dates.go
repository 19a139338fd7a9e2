package report

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or RFC3339. A plain date used as an upper
// bound covers the whole day. Empty input yields the zero time.
func ParseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseInLocation(dateLayout, raw, time.UTC); err == nil {
		if endOfDay {
			d = d.Add(24*time.Hour - time.Nanosecond)
		}
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", raw)
	}
	return t.UTC(), nil
}

// ParseRange builds a validated Range from optional from/to strings.
func ParseRange(from, to string) (Range, error) {
	var (
		r   Range
		err error
	)
	if r.From, err = ParseDate(from, false); err != nil {
		return Range{}, err
	}
	if r.To, err = ParseDate(to, true); err != nil {
		return Range{}, err
	}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}
