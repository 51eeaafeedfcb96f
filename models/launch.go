// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Keys of the launch configuration document that the patcher addresses.
// Every other key is carried through untouched.
const (
	// ConfigurationsKey names the top-level array of debugger launch
	// configurations.
	ConfigurationsKey = "configurations"

	// ExecutableKey names the field of a launch configuration that holds
	// the path of the firmware image the debugger loads.
	ExecutableKey = "executable"
)

// LaunchDocument is the decoded content of a debugger launch configuration
// file (for example .vscode/launch.json).
//
// The document is kept generic so that fields the patcher does not know about
// survive a load/save round trip by value. Numbers are decoded as
// [encoding/json.Number] and written back with their original text.
type LaunchDocument map[string]any

// Configurations returns the raw "configurations" value and whether the key
// is present at all.
func (d LaunchDocument) Configurations() (any, bool) {
	v, ok := d[ConfigurationsKey]
	return v, ok
}
