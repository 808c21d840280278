// Package buildinfo carries release metadata stamped at build time.
package buildinfo

// Set by the release build via -ldflags; the defaults mark dev builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
