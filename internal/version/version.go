// Package version reports build information injected at link time.
package version

import "fmt"

// These variables are set at build time via ldflags:
//
//	-X github.com/example/ippo/internal/version.Commit=$(git rev-parse HEAD)
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver)
func String() string {
	return fmt.Sprintf("ippo dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

func shortCommit() string {
	return Commit[:min(len(Commit), 7)]
}
