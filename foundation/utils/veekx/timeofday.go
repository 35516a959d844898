// File: timeofday.go
// Title: Time of Day and Millis Conversions
// Description: The TimeOfDay value type and its conversions to and from
//              millis-of-day and micros-of-day.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Micros precision, fixed-point decomposition
// - 2026-10-18 v0.2.1: FormatTimeMillis stays within the day, decimal range errors

package veekx

import (
	"fmt"
	"math"
	"strconv"
	"time"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// TimeOfDay is a wall clock time within a single day, independent of any date
// or location. The zero value is midnight.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewTimeOfDay builds a validated TimeOfDay at millisecond precision.
func NewTimeOfDay(hour, minute, second, millisecond int) (TimeOfDay, error) {
	const op = "veekx.NewTimeOfDay"
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, rangeError(op, "hour", hour, 0, 23)
	case minute < 0 || minute > 59:
		return TimeOfDay{}, rangeError(op, "minute", minute, 0, 59)
	case second < 0 || second > 59:
		return TimeOfDay{}, rangeError(op, "second", second, 0, 59)
	case millisecond < 0 || millisecond > 999:
		return TimeOfDay{}, rangeError(op, "millisecond", millisecond, 0, 999)
	}
	return TimeOfDay{
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: millisecond * int(time.Millisecond),
	}, nil
}

// TimeOfDayOf returns the wall clock of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// ParseTimeOfDay parses "HH:MM", "HH:MM:SS" or "HH:MM:SS.fff" with up to nine
// fractional digits. A one-digit hour ("9:05") is accepted as well.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		// fractional seconds are accepted after the seconds field
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, formatError("veekx.ParseTimeOfDay", s, "HH:MM[:SS[.fff]]")
}

// Valid reports whether every field is within its range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59 &&
		t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

// On places the time of day on the date of d, in d's location.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, t.Second, t.Nanosecond, d.Location())
}

// String formats as HH:MM:SS.fff, or with nine fractional digits when the
// value is not a whole millisecond.
func (t TimeOfDay) String() string {
	if t.Nanosecond%int(time.Millisecond) == 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Nanosecond/int(time.Millisecond))
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) wholeSeconds() int64 {
	return int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
}

// ===============================
// Millis-of-day
// ===============================

// TimeToMillis returns the milliseconds elapsed since midnight. Exact for
// whole milliseconds; finer precision shows up as a fraction that must be
// rounded before display.
func TimeToMillis(t TimeOfDay) float64 {
	return float64(t.wholeSeconds()*MillisPerSecond) + float64(t.Nanosecond)/float64(time.Millisecond)
}

// TimeToMillisStr formats TimeToMillis rounded to a whole millisecond, without
// a unit suffix.
func TimeToMillisStr(t TimeOfDay) string {
	return FormatTimeMillis(t, false)
}

// FormatTimeMillis formats the millis-of-day of t rounded to a whole
// millisecond, with the "md" suffix when unit is set. The last half
// millisecond of the day rounds down to 86399999, never onto the next day.
func FormatTimeMillis(t TimeOfDay, unit bool) string {
	n := t.wholeSeconds()*MillisPerSecond + int64(math.Round(float64(t.Nanosecond)/float64(time.Millisecond)))
	return FormatMillis(float64(min(n, MillisPerDay-1)), unit)
}

// MillisToTime rounds millis half away from zero and decomposes it into a
// TimeOfDay. The rounded value must lie in [0, MillisPerDay).
func MillisToTime(millis float64) (TimeOfDay, error) {
	n, err := roundDayFraction(millis, MillisPerDay, "veekx.MillisToTime", "millis")
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{
		Hour:       int(n / MillisPerHour),
		Minute:     int(n % MillisPerHour / MillisPerMinute),
		Second:     int(n % MillisPerMinute / MillisPerSecond),
		Nanosecond: int(n%MillisPerSecond) * int(time.Millisecond),
	}, nil
}

// MillisToTimeOpt is MillisToTime with the error dropped.
func MillisToTimeOpt(millis float64) (TimeOfDay, bool) {
	t, err := MillisToTime(millis)
	return t, err == nil
}

// ===============================
// Micros-of-day
// ===============================

// TimeToMicros returns the microseconds elapsed since midnight.
func TimeToMicros(t TimeOfDay) float64 {
	return float64(t.wholeSeconds()*MicrosPerSecond) + float64(t.Nanosecond)/float64(time.Microsecond)
}

// MicrosToTime rounds micros half away from zero and decomposes it into a
// TimeOfDay. The rounded value must lie in [0, MicrosPerDay).
func MicrosToTime(micros float64) (TimeOfDay, error) {
	n, err := roundDayFraction(micros, MicrosPerDay, "veekx.MicrosToTime", "micros")
	if err != nil {
		return TimeOfDay{}, err
	}
	secs := n / MicrosPerSecond
	return TimeOfDay{
		Hour:       int(secs / 3600),
		Minute:     int(secs % 3600 / 60),
		Second:     int(secs % 60),
		Nanosecond: int(n%MicrosPerSecond) * int(time.Microsecond),
	}, nil
}

// MicrosToTimeOpt is MicrosToTime with the error dropped.
func MicrosToTimeOpt(micros float64) (TimeOfDay, bool) {
	t, err := MicrosToTime(micros)
	return t, err == nil
}

// roundDayFraction rounds v to an integer unit count in [0, perDay). The
// range check happens before the int64 conversion.
func roundDayFraction(v float64, perDay int64, operation, field string) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, mdwerror.Newf("%s %v is not a finite number", field, v).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(operation).
			WithDetail(field, v)
	}
	r := math.Round(v)
	if r < 0 || r >= float64(perDay) {
		return 0, rangeError(operation, field, strconv.FormatFloat(v, 'f', -1, 64), 0, perDay-1)
	}
	return int64(r), nil
}
