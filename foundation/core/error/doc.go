// Package error provides structured errors for the veeks foundation module.
//
// Package: error
// Title: veeks Error Handling
// Description: A small structured error type carrying a code, a severity, the
//              failing operation and key/value details. Parsers in veekx return
//              these errors so that callers (the CLI in particular) can report
//              why an input was rejected, while the comma-ok variants simply drop
//              them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: errors.As based lookups, exit codes for the CLI
//
// Usage:
//
//	import mdwerror "github.com/msto63/veeks/foundation/core/error"
//
//	err := mdwerror.New("veek number out of range").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithOperation("veekx.ParseVeekDate").
//		WithDetail("input", "2019c 53v 5d")
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// reject input
//	}
package error
