// Package version holds pyscn's build metadata, stamped in at build
// time via -ldflags (-X on the variables below).
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag (e.g. v0.3.0), or "dev" for a local build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Date is the UTC build timestamp.
	Date = "unknown"
	// BuiltBy names the process that produced the binary (goreleaser, a
	// developer's machine, CI).
	BuiltBy = "unknown"
)

// Info renders the full multi-line build report shown by `pyscn
// version`.
func Info() string {
	return fmt.Sprintf(
		"pyscn %s\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

// Short returns just the version string, for `pyscn version --short`
// and the root command's --version flag.
func Short() string {
	return Version
}
