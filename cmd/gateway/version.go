// In file: cmd/gateway/version.go
package main

import (
	"fmt"
	"runtime"
)

// Populated via -ldflags at build time.
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Version: %s | Commit: %s | %s | %s", b.Version, b.GitCommit, b.GoVersion, b.Platform)
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
