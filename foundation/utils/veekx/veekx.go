// File: veekx.go
// Title: Veek and Millis Core Definitions
// Description: Unit suffixes, scale constants, seconds/micros scaling and the
//              millis/micros string parsers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Optional sign in the numeric grammar, ASCII micros suffix

package veekx

import (
	"math"
	"regexp"
	"strconv"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// Unit suffixes of the veek notation
const (
	YearUnit        = "c"
	VeekUnit        = "v"
	DayUnit         = "d"
	MillisUnit      = "md"
	MicrosUnit      = "μd"
	MicrosUnitASCII = "ud"
)

// Scale constants for day fractions
const (
	MillisPerSecond = 1_000
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour

	MicrosPerSecond = 1_000_000
	MicrosPerDay    = 86_400 * MicrosPerSecond
)

var (
	millisPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))(?:md)?$`)
	microsPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))(?:μd|ud)?$`)
)

// ===============================
// Seconds and Micros
// ===============================

// SecondsToMicros scales seconds-of-day to micros-of-day. The input is not
// range checked.
func SecondsToMicros(seconds float64) float64 {
	return seconds * MicrosPerSecond
}

// MicrosToSeconds scales micros-of-day back to seconds-of-day.
func MicrosToSeconds(micros float64) float64 {
	return micros / MicrosPerSecond
}

// ===============================
// Parsing
// ===============================

// ParseMillis parses a decimal millis value with an optional "md" suffix.
// Surrounding whitespace is not trimmed.
func ParseMillis(s string) (float64, error) {
	return parseDayFraction(s, millisPattern, "veekx.ParseMillis", "[+-]digits[.digits][md]")
}

// ParseMicros parses a decimal micros value with an optional "μd" or "ud"
// suffix. Surrounding whitespace is not trimmed.
func ParseMicros(s string) (float64, error) {
	return parseDayFraction(s, microsPattern, "veekx.ParseMicros", "[+-]digits[.digits][μd]")
}

// MillisFromStrOpt is ParseMillis with the error dropped.
func MillisFromStrOpt(s string) (float64, bool) {
	v, err := ParseMillis(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MicrosFromStrOpt is ParseMicros with the error dropped.
func MicrosFromStrOpt(s string) (float64, bool) {
	v, err := ParseMicros(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDayFraction(s string, pattern *regexp.Regexp, operation, expected string) (float64, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, formatError(operation, s, expected)
	}

	// overflow to ±Inf is reported as ErrRange
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "value not representable as float64").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(operation).
			WithDetail("input", s)
	}
	return v, nil
}

// ===============================
// Formatting
// ===============================

// FormatMillis rounds to a whole millisecond and formats the result as an
// integer string, with the "md" suffix when unit is set.
func FormatMillis(millis float64, unit bool) string {
	s := formatRounded(millis)
	if unit {
		return s + MillisUnit
	}
	return s
}

// FormatMicros rounds to a whole microsecond and formats the result as an
// integer string, with the "μd" suffix when unit is set.
func FormatMicros(micros float64, unit bool) string {
	s := formatRounded(micros)
	if unit {
		return s + MicrosUnit
	}
	return s
}

// formatRounded rounds half away from zero. Adding zero folds -0 into 0.
func formatRounded(v float64) string {
	return strconv.FormatFloat(math.Round(v)+0, 'f', -1, 64)
}

// ===============================
// Errors
// ===============================

func formatError(operation, input, expected string) *mdwerror.Error {
	return mdwerror.Newf("invalid format %q, expected %s", input, expected).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(operation).
		WithDetail("input", input).
		WithDetail("expected", expected)
}

func rangeError(operation, field string, value, min, max interface{}) *mdwerror.Error {
	return mdwerror.Newf("%s %v out of range [%v, %v]", field, value, min, max).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(operation).
		WithDetail(field, value).
		WithDetail("min", min).
		WithDetail("max", max)
}
