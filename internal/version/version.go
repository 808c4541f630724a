// Package version exposes build information injected with ldflags, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/iroha/internal/version.Version=1.2.0 \
//	  -X github.com/jmylchreest/iroha/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/iroha/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = unknown

	// Date is the build time in RFC3339 format.
	Date = unknown
)

// Info is the full build description.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information. When no commit was injected the
// VCS revision recorded by the Go toolchain is used, if any.
func GetInfo() Info {
	commit := Commit
	if commit == unknown {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
				}
			}
		}
	}

	return Info{
		Version:   Version,
		Commit:    commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats info on one line.
func (i Info) String() string {
	var details string
	if i.Commit != unknown {
		details = "commit: " + shortCommit(i.Commit) + ", "
	}
	if i.Date != unknown {
		details += "built: " + i.Date + ", "
	}
	return fmt.Sprintf("iroha version %s (%s%s, %s)", i.Version, details, i.GoVersion, i.Platform)
}

// String returns the one-line build description.
func String() string {
	return GetInfo().String()
}

// Short returns just the version number.
func Short() string {
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
