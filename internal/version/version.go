// Package version holds the build identity stamped in via ldflags:
//
//	go build -ldflags "-X mixmaster/internal/version.Version=2.1.0"
package version

import "fmt"

var (
	// Version is the semantic version of this build.
	Version = "2.0.0"

	// Commit and BuildDate are filled by the release build.
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, with a short commit suffix when a real
// commit hash was stamped in.
func Info() string {
	if c := shortCommit(); c != "" {
		return fmt.Sprintf("%s (%s)", Version, c)
	}
	return Version
}

// Full returns the multi-line version block printed by the version
// command.
func Full() string {
	return fmt.Sprintf("MixMaster version %s\nCommit: %s\nBuilt: %s", Version, Commit, BuildDate)
}

func shortCommit() string {
	if Commit == "unknown" || len(Commit) <= 7 {
		return ""
	}
	return Commit[:7]
}
