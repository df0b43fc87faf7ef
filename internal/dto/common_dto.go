package dto

import (
	"fmt"
	"strings"
	"time"
)

// PageQuery carries the limit/offset query params shared by list endpoints.
// Both accept zero; limit=0 returns an empty page.
type PageQuery struct {
	Limit  int `form:"limit,default=10"  validate:"min=0"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}

// Date is a calendar date on the wire ("2006-01-02"). RFC 3339 timestamps are
// accepted on input for clients that send full datetimes.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date { return Date{t} }

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

// UnmarshalParam lets gin bind Date fields from form/query values.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, param)
	if err != nil {
		return fmt.Errorf("invalid date %q", param)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// TimePtr returns the wrapped time, or nil when unset. Models store optional
// dates as *time.Time.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// DateFromPtr wraps an optional model date for responses.
func DateFromPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}
