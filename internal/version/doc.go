// Package version reports the version of the artifact-info binary itself.
// Release builds inject the values through -ldflags; otherwise they are read
// from runtime/debug.BuildInfo, which go install and VCS builds populate.
package version
