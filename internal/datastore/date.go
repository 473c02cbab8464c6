package datastore

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// Date is a calendar date without time zone, stored in DATE columns and
// encoded as "YYYY-MM-DD" in JSON.
type Date struct {
	civil.Date
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{d}, nil
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	return Date{civil.DateOf(time.Now().In(loc))}
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	}
	return fmt.Errorf("datastore: cannot scan %T into Date", src)
}

func (d Date) Value() (driver.Value, error) {
	return d.In(time.UTC), nil
}

func (d *Date) parse(s string) error {
	// DATE columns may come back as full timestamps from some drivers.
	if len(s) > len("2006-01-02") {
		s = s[:len("2006-01-02")]
	}
	parsed, err := civil.ParseDate(s)
	if err != nil {
		return err
	}
	d.Date = parsed
	return nil
}
