// Package version holds build-time identification for the agentforge CLI.
package version

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)
