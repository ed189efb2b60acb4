package version

import "fmt"

// Build metadata, overridden at link time via -ldflags "-X".
var (
	Version   = "0.1.0"
	Commit    = "dev"
	BuildDate = "unknown"
)

// Full renders the version with its build provenance.
func Full() string {
	return fmt.Sprintf("siteproof %s (commit %s, built %s)", Version, Commit, BuildDate)
}
