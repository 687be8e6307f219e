package flex

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day and no zone. Statement dates
// carry no zone information, and time.Time equality drags a Location along
// with it, so a plain comparable value type fits better here.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns the midnight instant of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// DateTime is a combined date and wall-clock time, zoneless like Date.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// In returns the instant of dt in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(
		dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, loc,
	)
}
