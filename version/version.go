// Package version holds the build version reported by the snake binary.
package version

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"
