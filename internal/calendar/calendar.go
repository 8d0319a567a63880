// Package calendar holds budget-month arithmetic and the per-request notion
// of "today", which clients may override to match their own timezone.
package calendar

import (
	"fmt"
	"time"
)

// Month identifies one budget month.
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthOf returns the budget month containing t. Stored dates are midnight
// UTC, so t is read in UTC whatever location the driver returned it in.
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return Month{Year: u.Year(), Month: int(u.Month())}
}

// Valid reports whether m names a real month.
func (m Month) Valid() bool {
	return m.Year >= 1900 && m.Year <= 9999 && m.Month >= 1 && m.Month <= 12
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return other.Before(m)
}

// Prev returns the month before m.
func (m Month) Prev() Month {
	if m.Month == 1 {
		return Month{Year: m.Year - 1, Month: 12}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// UserDate is the caller's view of the current date.
type UserDate struct {
	// Today is midnight UTC of the caller's calendar day.
	Today time.Time
	// Current is the month month-sensitive writes land in.
	Current Month
}

// Now builds a UserDate from the server clock.
func Now() UserDate {
	return At(time.Now())
}

// At builds a UserDate for the calendar day of t.
func At(t time.Time) UserDate {
	day := DateOnly(t)
	return UserDate{Today: day, Current: MonthOf(day)}
}

// Resolve applies the optional userDate, userYear and userMonth overrides
// on top of now. userDate (YYYY-MM-DD) sets both the day and the month;
// userYear/userMonth, when both present, override only the month.
func Resolve(userDate string, userYear, userMonth int, now time.Time) (UserDate, error) {
	ud := At(now)
	if userDate != "" {
		d, err := ParseDate(userDate)
		if err != nil {
			return UserDate{}, err
		}
		ud = At(d)
	}
	if userYear != 0 || userMonth != 0 {
		m := Month{Year: userYear, Month: userMonth}
		if !m.Valid() {
			return UserDate{}, fmt.Errorf("invalid userYear/userMonth %d/%d", userYear, userMonth)
		}
		ud.Current = m
	}
	return ud, nil
}

// IsFuture reports whether d falls after the end of the user's day.
func (u UserDate) IsFuture(d time.Time) bool {
	return DateOnly(d).After(u.Today)
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp. Only the calendar
// day as written by the client is kept.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", s)
}
