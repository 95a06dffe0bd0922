package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the wire format for acquisition dates.
const DateFormat = "2006-01-02"

// dateLayouts are the accepted input layouts, most common first. Timestamps
// are handled by cutting the input to its date part before parsing.
var dateLayouts = []string{DateFormat, "2006-1-2", "01/02/2006", "1/2/2006"}

// Date is a calendar date with day granularity. The zero value means the
// date is unknown; it marshals to JSON null and renders as an empty string.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a normalized Date. Out-of-range components roll over the
// way time.Date rolls them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its calendar date. The zero time stays the zero Date.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses s into a Date. Timestamp suffixes after the date part are
// ignored so exports from spreadsheet tools round-trip.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateFormat) && (s[len(DateFormat)] == 'T' || s[len(DateFormat)] == ' ') {
		s = s[:len(DateFormat)]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// CoerceDate converts a cell of unknown type to a Date. Anything unparsable
// becomes the unknown date rather than an error.
func CoerceDate(v any) Date {
	switch x := v.(type) {
	case nil:
		return Date{}
	case Date:
		return x
	case time.Time:
		return DateOf(x)
	case string:
		d, err := ParseDate(x)
		if err != nil {
			return Date{}
		}
		return d
	default:
		return Date{}
	}
}

// IsZero reports whether the date is unknown.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String renders the date in DateFormat, or "" for the unknown date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// MarshalJSON renders the unknown date as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "", or any layout ParseDate accepts. Unparsable
// strings coerce to the unknown date, matching the rest of the pipeline.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = CoerceDate(s)
	return nil
}

var (
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = (*Date)(nil)
)
