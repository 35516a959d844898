// File: timeofday_test.go
// Title: Time of Day and Millis Tests
// Description: Millis and micros conversions, the rounding rule at the day
//              boundaries and the whole-millisecond round trip.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Micros precision and round half away from zero

package veekx

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

func mustTime(t *testing.T, h, m, s, ms int) TimeOfDay {
	t.Helper()
	tod, err := NewTimeOfDay(h, m, s, ms)
	if err != nil {
		t.Fatalf("NewTimeOfDay(%d, %d, %d, %d) error = %v", h, m, s, ms, err)
	}
	return tod
}

func TestTimeToMillis(t *testing.T) {
	testCases := []struct {
		name string
		tod  TimeOfDay
		want float64
	}{
		{"midnight", TimeOfDay{}, 0},
		{"half past one pm", TimeOfDay{Hour: 13, Minute: 30}, 48_600_000},
		{"last millisecond", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}, 86_399_999},
		{"sub millisecond", TimeOfDay{Second: 1, Nanosecond: 1_500_000}, 1001.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeToMillis(tc.tod); got != tc.want {
				t.Errorf("TimeToMillis(%v) = %v, want %v", tc.tod, got, tc.want)
			}
		})
	}
}

func TestTimeToMillisStr(t *testing.T) {
	testCases := []struct {
		name string
		tod  TimeOfDay
		want string
	}{
		{"midnight", TimeOfDay{}, "0"},
		{"last millisecond", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}, "86399999"},
		{"half past one pm", TimeOfDay{Hour: 13, Minute: 30}, "48600000"},
		{"half millisecond rounds up", TimeOfDay{Nanosecond: 500_000}, "1"},
		{"below half rounds down", TimeOfDay{Nanosecond: 499_999}, "0"},
		{"last half millisecond stays in the day", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_600_000}, "86399999"},
		{"last nanosecond stays in the day", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_999_999}, "86399999"},
		{"carry into the next second", TimeOfDay{Hour: 23, Minute: 59, Second: 58, Nanosecond: 999_600_000}, "86399000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeToMillisStr(tc.tod); got != tc.want {
				t.Errorf("TimeToMillisStr(%v) = %q, want %q", tc.tod, got, tc.want)
			}
		})
	}
}

func TestFormatTimeMillis(t *testing.T) {
	tests := []struct {
		tod  TimeOfDay
		unit bool
		want string
	}{
		{TimeOfDay{Hour: 13, Minute: 30}, true, "48600000md"},
		{TimeOfDay{Hour: 13, Minute: 30}, false, "48600000"},
		{TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_500_000}, true, "86399999md"},
	}

	for _, tt := range tests {
		got := FormatTimeMillis(tt.tod, tt.unit)
		if got != tt.want {
			t.Errorf("FormatTimeMillis(%v, %v) = %q, want %q", tt.tod, tt.unit, got, tt.want)
		}
		millis, ok := MillisFromStrOpt(got)
		if !ok {
			t.Fatalf("MillisFromStrOpt(%q) failed", got)
		}
		if _, ok := MillisToTimeOpt(millis); !ok {
			t.Errorf("MillisToTimeOpt(%v) rejected formatted output of %v", millis, tt.tod)
		}
	}
}

func TestMillisToTimeOpt(t *testing.T) {
	testCases := []struct {
		name   string
		millis float64
		ok     bool
		want   TimeOfDay
	}{
		{"zero", 0, true, TimeOfDay{}},
		{"negative below half rounds to zero", -0.4, true, TimeOfDay{}},
		{"negative half rounds away from zero", -0.5, false, TimeOfDay{}},
		{"half rounds up", 0.5, true, TimeOfDay{Nanosecond: 1_000_000}},
		{"one and a half", 1.5, true, TimeOfDay{Nanosecond: 2_000_000}},
		{"two and a half is not rounded to even", 2.5, true, TimeOfDay{Nanosecond: 3_000_000}},
		{"half past one pm", 48_600_000, true, TimeOfDay{Hour: 13, Minute: 30}},
		{"last millisecond", 86_399_999, true, TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}},
		{"last millisecond from below", 86_399_999.4, true, TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}},
		{"rounds onto the next day", 86_399_999.6, false, TimeOfDay{}},
		{"exactly one day", 86_400_000, false, TimeOfDay{}},
		{"negative", -1, false, TimeOfDay{}},
		{"huge", 1e300, false, TimeOfDay{}},
		{"NaN", math.NaN(), false, TimeOfDay{}},
		{"+Inf", math.Inf(1), false, TimeOfDay{}},
		{"-Inf", math.Inf(-1), false, TimeOfDay{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MillisToTimeOpt(tc.millis)
			if ok != tc.ok {
				t.Fatalf("MillisToTimeOpt(%v) ok = %v, want %v", tc.millis, ok, tc.ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MillisToTimeOpt(%v) mismatch (-want +got):\n%s", tc.millis, diff)
			}
		})
	}
}

func TestMillisToTimeErrorCode(t *testing.T) {
	_, err := MillisToTime(86_400_000)
	if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("MillisToTime() error = %v, want VALUE_OUT_OF_RANGE", err)
	}
	if want := "millis 86400000 out of range [0, 86399999]"; err == nil || err.Error() != want {
		t.Errorf("MillisToTime() message = %v, want %q", err, want)
	}
	_, err = MicrosToTime(-1.5)
	if want := "micros -1.5 out of range [0, 86399999999]"; err == nil || err.Error() != want {
		t.Errorf("MicrosToTime() message = %v, want %q", err, want)
	}
	_, err = MillisToTime(math.NaN())
	if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("MillisToTime(NaN) error = %v, want VALUE_OUT_OF_RANGE", err)
	}
}

// TestMillisRoundTrip covers the first and last second of the day millisecond
// by millisecond and the rest with a prime stride.
func TestMillisRoundTrip(t *testing.T) {
	check := func(n int) {
		tod, ok := MillisToTimeOpt(float64(n))
		if !ok {
			t.Fatalf("MillisToTimeOpt(%d) failed", n)
		}
		if got := TimeToMillis(tod); got != float64(n) {
			t.Fatalf("TimeToMillis(MillisToTimeOpt(%d)) = %v", n, got)
		}
		back, ok := MillisToTimeOpt(math.Round(TimeToMillis(tod)))
		if !ok || back != tod {
			t.Fatalf("MillisToTimeOpt(round(TimeToMillis(%v))) = %v, %v", tod, back, ok)
		}
	}

	for n := 0; n < MillisPerSecond; n++ {
		check(n)
		check(MillisPerDay - 1 - n)
	}
	for n := 0; n < MillisPerDay; n += 7919 {
		check(n)
	}
}

func TestNewTimeOfDay(t *testing.T) {
	tod := mustTime(t, 23, 59, 59, 999)
	if tod.String() != "23:59:59.999" {
		t.Errorf("String() = %q", tod.String())
	}
	if !tod.Valid() {
		t.Error("Valid() = false")
	}

	bad := [][4]int{{24, 0, 0, 0}, {-1, 0, 0, 0}, {0, 60, 0, 0}, {0, 0, 60, 0}, {0, 0, 0, 1000}, {0, 0, 0, -1}}
	for _, b := range bad {
		if _, err := NewTimeOfDay(b[0], b[1], b[2], b[3]); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
			t.Errorf("NewTimeOfDay(%v) error = %v, want VALUE_OUT_OF_RANGE", b, err)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"13:30", TimeOfDay{Hour: 13, Minute: 30}, false},
		{"13:30:00", TimeOfDay{Hour: 13, Minute: 30}, false},
		{"23:59:59.999", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}, false},
		{"00:00:00.000000001", TimeOfDay{Nanosecond: 1}, false},
		{"9:05", TimeOfDay{Hour: 9, Minute: 5}, false},
		{"9:05:07", TimeOfDay{Hour: 9, Minute: 5, Second: 7}, false},
		{"09:5", TimeOfDay{}, true},
		{"24:00:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("ParseTimeOfDay(%q) error code = %v", tc.input, mdwerror.GetCode(err))
				}
				return
			}
			if got != tc.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTimeOfDayOfAndOn(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	src := time.Date(2021, 1, 1, 13, 30, 15, 250_000_000, loc)

	tod := TimeOfDayOf(src)
	if want := (TimeOfDay{Hour: 13, Minute: 30, Second: 15, Nanosecond: 250_000_000}); tod != want {
		t.Errorf("TimeOfDayOf() = %v, want %v", tod, want)
	}

	placed := tod.On(time.Date(2024, 2, 29, 0, 0, 0, 0, loc))
	if want := time.Date(2024, 2, 29, 13, 30, 15, 250_000_000, loc); !placed.Equal(want) {
		t.Errorf("On() = %v, want %v", placed, want)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := (TimeOfDay{Hour: 1, Minute: 2, Second: 3, Nanosecond: 4}).String(); got != "01:02:03.000000004" {
		t.Errorf("String() = %q", got)
	}
	if got := (TimeOfDay{}).String(); got != "00:00:00.000" {
		t.Errorf("String() = %q", got)
	}
}

func TestTimeOfDayTextMarshalling(t *testing.T) {
	in := TimeOfDay{Hour: 7, Minute: 5, Second: 9, Nanosecond: 42_000_000}
	text, err := in.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var out TimeOfDay
	if err := out.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", text, err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
	if err := out.UnmarshalText([]byte("25:00")); err == nil {
		t.Error("UnmarshalText(25:00) expected error")
	}
}

func TestMicrosConversions(t *testing.T) {
	tod := TimeOfDay{Hour: 1, Second: 1, Nanosecond: 1_500}
	if got, want := TimeToMicros(tod), 3_601_000_001.5; got != want {
		t.Errorf("TimeToMicros() = %v, want %v", got, want)
	}

	back, ok := MicrosToTimeOpt(3_601_000_001.5)
	if !ok {
		t.Fatal("MicrosToTimeOpt() failed")
	}
	if want := (TimeOfDay{Hour: 1, Second: 1, Nanosecond: 2_000}); back != want {
		t.Errorf("MicrosToTimeOpt() = %v, want %v", back, want)
	}

	for _, bad := range []float64{-0.5, MicrosPerDay, MicrosPerDay - 0.5, math.NaN()} {
		if _, ok := MicrosToTimeOpt(bad); ok {
			t.Errorf("MicrosToTimeOpt(%v) ok = true, want false", bad)
		}
	}
	if last, ok := MicrosToTimeOpt(MicrosPerDay - 1); !ok || last.Nanosecond != 999_999_000 {
		t.Errorf("MicrosToTimeOpt(last) = %v, %v", last, ok)
	}
}
