package cli

import "github.com/matzehuels/elbow/pkg/buildinfo"

// SetVersion sets the version information displayed by --version and the
// health endpoint. Empty values leave the ldflags defaults in place.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
//
// Call it before [CLI.RootCommand].
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}
