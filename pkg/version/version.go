// Package version exposes the scrollfeed build version. The value is
// overridden at build time via -ldflags "-X ...version.Version=v1.2.3".
package version

// Version is the build version, "dev" for local builds.
var Version = "dev" //nolint:gochecknoglobals // Set via ldflags at build time

// GetVersion returns the current build version.
func GetVersion() string {
	return Version
}
