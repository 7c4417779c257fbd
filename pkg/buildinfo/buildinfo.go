// Package buildinfo contains build information.
package buildinfo

// Version identifies the version of dirglob. On release branches it
// is overridden at build time with -ldflags.
var Version = "0.1.0-dev"
