package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the forms clients send dates in: HTML date inputs,
// datetime-local inputs and full timestamps.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is an optional calendar date. The zero Date is absent and prints
// as the empty string.
//
// In JSON a Date is null, "", a date like "2024-03-01" or an RFC 3339
// timestamp.
type Date struct {
	time.Time
}

// NewDate returns the Date of t.
func NewDate(t time.Time) Date { return Date{Time: t} }

// ParseDate parses s in any of the accepted forms. Blank input is the zero
// Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("record: invalid date %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("record: date must be a string: %w", err)
	}
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. The zero Date is null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return d.Time.MarshalJSON()
}

// String returns the date as DD/MM/YYYY.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}
