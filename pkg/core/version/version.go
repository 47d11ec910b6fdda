// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     version
// Description: Build version information
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version
const Version = "1.0.0"

// Set during build via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info is the full build description
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("scripter v%s (%s, %s)", i.Version, i.GitCommit, i.Platform)
}
