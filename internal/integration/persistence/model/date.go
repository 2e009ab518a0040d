package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Date stores a civil.Date as an ISO-8601 date. It is written as text so
// that the same column compares correctly on PostgreSQL and SQLite.
type Date struct {
	civil.Date
}

// NewDate wraps d for use in models and query arguments.
func NewDate(d civil.Date) Date {
	return Date{Date: d}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Date.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v.UTC())
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		d.Date = civil.Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into model.Date", src)
	}
}

func (d *Date) parse(s string) error {
	// Drivers may hand back a full timestamp for DATE columns
	if len(s) > 10 {
		s = s[:10]
	}
	parsed, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Date = parsed
	return nil
}
