// Package config provides configuration loading, merging, and validation for
// the offsync daemon.
//
// Configuration is assembled from multiple sources: environment variables,
// command-line flags, an optional JSON file, and built-in defaults. Sources
// are merged in that order — a field set by an earlier source is not
// overridden by a later one, and defaults only fill what every other source
// left empty.
//
// The main entry point is [GetConfig].
package config
