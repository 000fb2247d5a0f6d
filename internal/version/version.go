// Package version holds the build version, set with
// -ldflags "-X github.com/katiamach/hivebox/internal/version.Version=v1.2.3".
package version

// Version of the running binary.
var Version = "dev"
