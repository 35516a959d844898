// Package veekx converts between conventional dates and times and the veek
// notation.
//
// Package: veekx
// Title: Veek-Date and Millis-of-Day Conversions
// Description: Pure, stateless conversions between calendar dates and
//              veek-date strings, between times of day and millis-of-day, and
//              between seconds-of-day and micros-of-day. Every function is safe
//              for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: ISO week-year semantics, micros precision, error variants
//
// # Veek-Date Format
//
// A veek-date is an ISO-8601 week date with unit suffixes:
//
//	2020c 53v 5d
//
// four digit ISO week-year with unit "c" (common era), one space, two digit
// veek 01-53 with unit "v", one space, one digit veek-day 1 (Monday) to 7
// (Sunday) with unit "d". The ISO week-year differs from the calendar year
// around New Year: 2021-01-01 is "2020c 53v 5d".
//
//   - DateToVeekDate / VeekDateOf: calendar date to veek-date
//   - VeekToDateOpt / ParseVeekDate: veek-date to calendar date
//   - WeeksInYear: 52 or 53
//
// # Millis-of-Day
//
// Millis-of-day counts milliseconds since midnight, 0 to 86399999. Values are
// float64 at the API and are rounded half away from zero (math.Round) to a
// whole millisecond before they are decomposed or displayed.
//
//   - TimeToMillis / TimeToMillisStr: time of day to millis
//   - MillisToTimeOpt / MillisToTime: millis to time of day
//   - MillisFromStrOpt / ParseMillis: "86399999", "86399999md", "-1.5"
//   - FormatMillis: rounded integer string, optionally with "md"
//
// # Micros-of-Day
//
// Micros-of-day is seconds-of-day scaled by one million.
//
//   - SecondsToMicros / MicrosToSeconds
//   - MicrosFromStrOpt / ParseMicros: "110", "110μd", "110ud"
//   - TimeToMicros / MicrosToTimeOpt / FormatMicros
//
// # Errors
//
// Functions ending in Opt report invalid input with a false second result and
// never panic. Their counterparts return a structured error from
// github.com/msto63/veeks/foundation/core/error with code INVALID_FORMAT for
// grammar mismatches and VALUE_OUT_OF_RANGE for range violations.
package veekx
