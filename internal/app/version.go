package app

import (
	"fmt"
	"runtime"
)

// Version, Commit and BuildTime are set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/docsign-backend/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health and the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", Version, shortCommit(Commit), BuildTime, runtime.Version())
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
