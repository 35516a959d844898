// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the veeks
//              converters, configuration loader and command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set
// - 2026-10-16 v0.2.0: Narrowed to format, range and configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Conversion and validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidFormat, CodeValueOutOfRange:
		return "conversion"
	default:
		return "generic"
	}
}

// ExitCode maps the error code onto a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return 2
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return 3
	default:
		return 1
	}
}
