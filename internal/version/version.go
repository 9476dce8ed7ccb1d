// Package version holds build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/banshee-data/occupancy/internal/version.Version=v0.3.0"
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata on a single line.
func String() string {
	return fmt.Sprintf("gridctl %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
