package model

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of t as observed in loc (nil means time.Local)
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(orLocal(loc)).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Start returns midnight of the date in loc
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, orLocal(loc))
}

// Before reports whether d is an earlier date than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders the date as yyyy-MM-dd
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
