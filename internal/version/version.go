// Package version holds the application version.
package version

// Version is the current application version.
// It can be overridden at build time using:
// go build -ldflags "-X lingo-gate/internal/version.Version=x.y.z"
var Version = "1.0.0"
