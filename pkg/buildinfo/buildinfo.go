// Package buildinfo exposes Hydrogen's version metadata, adapted from the
// teacher's pkg/core version stamp so both a host program and telemetry
// resource attributes have a single source for it.
package buildinfo

// Version and Commit are set at build time via -ldflags; the values below
// are the development fallback.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns a human-readable "version (commit)" label.
func String() string {
	return Version + " (" + Commit + ")"
}
