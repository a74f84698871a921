// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/migliorelli/uconv/pkg/version.Version=v1.2.3".
package version

// Version is the current uconv release.
var Version = "v0.1.0"
