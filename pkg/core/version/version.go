// ============================================================================
// veeks - Veek-Date Toolkit
// ============================================================================
//
// Package:     version
// Description: Build-time version information for the veeks CLI
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via
// -ldflags "-X github.com/msto63/veeks/pkg/core/version.Version=..."
var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Platform returns "os/arch"
func (i Info) Platform() string {
	return i.OS + "/" + i.Arch
}

// String returns a one-line summary such as "veeks v0.2.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("veeks v%s (%s)", i.Version, i.GitCommit)
}
