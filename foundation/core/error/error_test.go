// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Chain lookups and exit codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if len(err.Details()) != 0 {
		t.Errorf("Details() = %v, want empty", err.Details())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("bad veek").WithCode(CodeValueOutOfRange),
			message:  "wrapper message",
			wantMsg:  "wrapper message: bad veek",
			wantCode: CodeValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidFormat).WithDetail("input", "x")
	outer := Wrap(inner, "outer")

	if outer.Details()["input"] != "x" {
		t.Errorf("Details()[input] = %v, want x", outer.Details()["input"])
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidFormat, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidFormat)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsIsCopy(t *testing.T) {
	err := New("x").WithDetail("k", 1)
	details := err.Details()
	details["k"] = 2

	if err.Details()["k"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCode(t *testing.T) {
	base := New("range").WithCode(CodeValueOutOfRange)
	wrappedStd := fmt.Errorf("context: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, CodeValueOutOfRange, true},
		{"direct mismatch", base, CodeInvalidFormat, false},
		{"through fmt.Errorf", wrappedStd, CodeValueOutOfRange, true},
		{"standard error", errors.New("plain"), CodeValueOutOfRange, false},
		{"nil", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("inner").WithCode(CodeConfigError))

	if got := GetCode(err); got != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", got, CodeConfigError)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeInvalidFormat, true, "conversion", 2},
		{CodeValueOutOfRange, true, "conversion", 2},
		{CodeInvalidInput, true, "generic", 2},
		{CodeConfigError, true, "configuration", 3},
		{CodeNotFound, true, "generic", 3},
		{CodeInternal, true, "generic", 1},
		{Code("BOGUS"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("root"), "parse failed").
		WithCode(CodeInvalidFormat).
		WithOperation("veekx.ParseVeekDate").
		WithDetail("input", "2021c-09v-3d").
		WithDetail("expected", "YYYYc WWv Dd")

	s := err.String()
	for _, want := range []string{
		"Error: parse failed",
		"Code: INVALID_FORMAT",
		"Severity: low",
		"Operation: veekx.ParseVeekDate",
		"Details: {expected=YYYYc WWv Dd, input=2021c-09v-3d}",
		"Cause: root",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad millis").
		WithCode(CodeInvalidFormat).
		WithOperation("veekx.ParseMillis").
		WithDetail("input", "abc")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "INVALID_FORMAT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "veekx.ParseMillis" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if _, ok := decoded["cause"]; ok {
		t.Error("cause must be omitted when nil")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("bench").WithCode(CodeInvalidFormat).WithDetail("input", i)
	}
}
