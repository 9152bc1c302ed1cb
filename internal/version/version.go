package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/rana/subcmd/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String describes the build on one line, e.g.
// "subcmd 1.2.0 (commit abc123, built 2024-05-01, linux/amd64 go1.22.3)".
func String(program string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s/%s %s)",
		program, Version, GitCommit, BuildDate,
		runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Short is the bare version, printed by --version.
func Short() string {
	return Version
}
