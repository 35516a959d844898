// File: veekdate.go
// Title: Veek-Date Conversions
// Description: The VeekDate value type (ISO-8601 week date written as
//              "YYYYc WWv Dd") and conversions to and from calendar dates.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: ISO week-year instead of ordinal-day weeks, week 53 check

package veekx

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// Year bounds of the four digit veek-date format
const (
	MinYear = 1
	MaxYear = 9999
)

// VeekDateLayout describes the veek-date grammar for error messages
const VeekDateLayout = "YYYYc WWv Dd"

var veekDatePattern = regexp.MustCompile(`^(\d{4})c (\d{2})v (\d)d$`)

// VeekDate is an ISO-8601 week date: ISO week-year, veek (week) 1-53 and
// veek-day 1 (Monday) to 7 (Sunday). Values built by this package are always
// valid; the zero value is not.
type VeekDate struct {
	year int
	veek int
	day  int
}

// NewVeekDate validates year, veek and day. Veek 53 is only accepted for ISO
// years that have 53 weeks.
func NewVeekDate(year, veek, day int) (VeekDate, error) {
	const op = "veekx.NewVeekDate"
	switch {
	case year < MinYear || year > MaxYear:
		return VeekDate{}, rangeError(op, "year", year, MinYear, MaxYear)
	case veek < 1 || veek > 53:
		return VeekDate{}, rangeError(op, "veek", veek, 1, 53)
	case day < 1 || day > 7:
		return VeekDate{}, rangeError(op, "day", day, 1, 7)
	}
	if weeks := WeeksInYear(year); veek > weeks {
		return VeekDate{}, mdwerror.Newf("veek %d does not exist in %d, which has %d veeks", veek, year, weeks).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("year", year).
			WithDetail("veek", veek).
			WithDetail("max", weeks)
	}
	return VeekDate{year: year, veek: veek, day: day}, nil
}

// VeekDateOf returns the veek-date of the calendar date of t. Only year, month
// and day are read; the location does not matter.
func VeekDateOf(t time.Time) VeekDate {
	year, week := t.ISOWeek()
	return VeekDate{year: year, veek: week, day: isoWeekday(t.Weekday())}
}

// ParseVeekDate parses the exact grammar "YYYYc WWv Dd".
func ParseVeekDate(s string) (VeekDate, error) {
	m := veekDatePattern.FindStringSubmatch(s)
	if m == nil {
		return VeekDate{}, formatError("veekx.ParseVeekDate", s, VeekDateLayout)
	}

	// the pattern guarantees ASCII digits
	year, _ := strconv.Atoi(m[1])
	veek, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	vd, err := NewVeekDate(year, veek, day)
	if err != nil {
		return VeekDate{}, mdwerror.Wrap(err, "invalid veek-date").
			WithOperation("veekx.ParseVeekDate").
			WithDetail("input", s)
	}
	return vd, nil
}

// Year returns the ISO week-year
func (v VeekDate) Year() int { return v.year }

// Veek returns the week number 1-53
func (v VeekDate) Veek() int { return v.veek }

// Day returns the veek-day, 1 for Monday through 7 for Sunday
func (v VeekDate) Day() int { return v.day }

// IsZero reports whether v is the zero value
func (v VeekDate) IsZero() bool {
	return v == VeekDate{}
}

// Weekday returns the day as a time.Weekday
func (v VeekDate) Weekday() time.Weekday {
	return time.Weekday(v.day % 7)
}

// Date returns the calendar date at midnight UTC. Week 1 is the week that
// contains January 4th.
func (v VeekDate) Date() time.Time {
	jan4 := time.Date(v.year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4.Weekday()))
	return monday.AddDate(0, 0, (v.veek-1)*7+v.day-1)
}

// String formats as "YYYYc WWv Dd"
func (v VeekDate) String() string {
	return fmt.Sprintf("%04d%s %02d%s %d%s", v.year, YearUnit, v.veek, VeekUnit, v.day, DayUnit)
}

// MarshalText implements encoding.TextMarshaler
func (v VeekDate) MarshalText() ([]byte, error) {
	if v.IsZero() {
		return nil, mdwerror.New("cannot marshal zero VeekDate").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("veekx.VeekDate.MarshalText")
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *VeekDate) UnmarshalText(text []byte) error {
	parsed, err := ParseVeekDate(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// WeeksInYear returns 52 or 53, the number of ISO weeks of an ISO week-year.
// December 28th always falls in the last week.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// DateToVeekDate formats the veek-date of the calendar date of d.
func DateToVeekDate(d time.Time) string {
	return VeekDateOf(d).String()
}

// VeekToDateOpt parses a veek-date string and returns its calendar date at
// midnight UTC.
func VeekToDateOpt(s string) (time.Time, bool) {
	vd, err := ParseVeekDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return vd.Date(), true
}

// isoWeekday maps Sunday=0..Saturday=6 onto Monday=1..Sunday=7
func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}
