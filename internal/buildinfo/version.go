// SPDX-License-Identifier: MIT

// Package buildinfo exposes version information injected at build time:
//
//	go build -ldflags "-X github.com/HesamPourabbasian/Strassen-Matrix/internal/buildinfo.Version=v1.0.0"
package buildinfo

import "runtime"

// Build-time variables (set via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info contains build information.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// String returns "version (commit) built at time".
func String() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}
