// Package config provides configuration loading, merging, and validation
// facilities for launchpatch.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (LAUNCHPATCH_*)
//  2. Command-line flags
//  3. JSON config file
//
// Fields still empty after merging receive the Default* values. The main
// entry point is [GetStructuredConfig].
package config
