// Package buildmeta resolves the facts embedded in a generated artifact-info
// source: the project's display name and description, the user running the
// build, the build host and the UTC build timestamp.
//
// Every resolver returns a concrete string. When a fact cannot be determined
// the documented fallback is returned instead of an error.
package buildmeta
