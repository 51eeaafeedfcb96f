// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PatchResult describes one successful rewrite of a launch configuration file.
type PatchResult struct {
	// FilePath is the absolute path of the launch file that was rewritten.
	FilePath string `json:"file_path"`

	// WorkingDir is the absolute working directory the new executable path
	// was derived from.
	WorkingDir string `json:"working_dir"`

	// ConfigurationIndex is the position inside "configurations" that was
	// patched.
	ConfigurationIndex int `json:"configuration_index"`

	// PreviousExecutable is the value found before patching. Empty when the
	// entry had no executable field or it was not a string.
	PreviousExecutable string `json:"previous_executable"`

	// NewExecutable is the value written to the file.
	NewExecutable string `json:"new_executable"`
}

// Changed reports whether the patch actually altered the executable value.
func (r PatchResult) Changed() bool {
	return r.PreviousExecutable != r.NewExecutable
}

// PatchHistoryEntry is a single journal record of a successful patch.
type PatchHistoryEntry struct {
	ID                 string    `json:"id"`
	FilePath           string    `json:"file_path"`
	ConfigurationIndex int       `json:"configuration_index"`
	PreviousExecutable string    `json:"previous_executable"`
	NewExecutable      string    `json:"new_executable"`
	WorkingDir         string    `json:"working_dir"`
	PatchedAt          time.Time `json:"patched_at"`
}

// PatchRequest carries everything needed to patch one launch file.
type PatchRequest struct {
	// FilePath is the launch file. Relative paths are resolved against
	// WorkingDir.
	FilePath string
	// WorkingDir is the directory the executable path is derived from.
	// Empty means the process working directory.
	WorkingDir string
	// ExecutableSuffix is joined onto WorkingDir to form the new value.
	ExecutableSuffix string
	// ConfigurationIndex selects the entry of "configurations" to patch.
	ConfigurationIndex int
	// Indent is the indentation width used when writing the file.
	Indent int
}
