// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields left
// empty by every configuration source.
const (
	// DefaultLaunchFile is resolved against the working directory.
	DefaultLaunchFile = ".vscode/launch.json"
	// DefaultIndent matches the indentation VS Code writes launch.json with.
	DefaultIndent = 4
	// DefaultWestBinary is looked up on PATH.
	DefaultWestBinary = "west"
	// DefaultHistoryDSN is resolved against the working directory.
	DefaultHistoryDSN = ".launchpatch/history.db"
	// DefaultLogLevel is the zerolog level name used when none is set.
	DefaultLogLevel = "info"
)

// DefaultExecutableSuffix is the location of the Zephyr firmware image inside
// a west build directory, relative to the application directory.
var DefaultExecutableSuffix = filepath.Join("build", "zephyr", "zephyr.elf")

// StructuredConfig is the top-level configuration container for launchpatch.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - json: key used in the JSON configuration file.
//
// Every environment variable is additionally prefixed with LAUNCHPATCH_.
type StructuredConfig struct {
	// Launch controls which file is patched and how.
	Launch Launch `envPrefix:"LAUNCH_" json:"launch"`

	// Workspace controls how the working directory is resolved.
	Workspace Workspace `envPrefix:"WORKSPACE_" json:"workspace"`

	// West holds the parameters of `west build` and `west flash`.
	West West `envPrefix:"WEST_" json:"west"`

	// History controls the local sqlite journal of applied patches.
	History History `envPrefix:"HISTORY_" json:"history"`

	// Log controls logger verbosity and output format.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via LAUNCHPATCH_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Launch describes the launch configuration document and the field to patch.
type Launch struct {
	// FilePath is the launch configuration file. Relative paths are
	// resolved against the working directory.
	// Env: LAUNCHPATCH_LAUNCH_FILE
	FilePath string `env:"FILE" json:"file"`

	// ExecutableSuffix is appended to the working directory to form the new
	// executable path. Must be relative.
	// Env: LAUNCHPATCH_LAUNCH_EXECUTABLE_SUFFIX
	ExecutableSuffix string `env:"EXECUTABLE_SUFFIX" json:"executable_suffix"`

	// ConfigurationIndex selects the entry of "configurations" to patch.
	// Env: LAUNCHPATCH_LAUNCH_CONFIGURATION_INDEX
	ConfigurationIndex int `env:"CONFIGURATION_INDEX" json:"configuration_index"`

	// Indent is the number of spaces used when writing the document back.
	// Env: LAUNCHPATCH_LAUNCH_INDENT
	Indent int `env:"INDENT" json:"indent"`

	// CopyToClipboard copies the new executable path to the system
	// clipboard after a successful patch.
	// Env: LAUNCHPATCH_LAUNCH_COPY
	CopyToClipboard bool `env:"COPY" json:"copy"`
}

// Workspace describes the directory the executable path is derived from.
type Workspace struct {
	// Dir overrides the process working directory.
	// Env: LAUNCHPATCH_WORKSPACE_DIR
	Dir string `env:"DIR" json:"dir"`
}

// West holds the defaults for the west meta-tool invocations.
type West struct {
	// Binary is the west executable name or path.
	// Env: LAUNCHPATCH_WEST_BINARY
	Binary string `env:"BINARY" json:"binary"`

	// Board is the default board passed to `west build -b`.
	// Env: LAUNCHPATCH_WEST_BOARD
	Board string `env:"BOARD" json:"board"`

	// Pristine forces `-p always` on every build.
	// Env: LAUNCHPATCH_WEST_PRISTINE
	Pristine bool `env:"PRISTINE" json:"pristine"`

	// ProjectPath is the application directory passed to `west build`.
	// Env: LAUNCHPATCH_WEST_PROJECT
	ProjectPath string `env:"PROJECT" json:"project"`

	// ConfigTarget is "", "menuconfig" or "guiconfig".
	// Env: LAUNCHPATCH_WEST_CONFIG_TARGET
	ConfigTarget string `env:"CONFIG_TARGET" json:"config_target"`
}

// History describes the sqlite patch journal.
type History struct {
	// DSN is the sqlite database file. Relative paths are resolved against
	// the working directory.
	// Env: LAUNCHPATCH_HISTORY_DSN
	DSN string `env:"DSN" json:"dsn"`

	// Disabled turns the journal off entirely.
	// Env: LAUNCHPATCH_HISTORY_DISABLED
	Disabled bool `env:"DISABLED" json:"disabled"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LAUNCHPATCH_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// Pretty switches from JSON lines to human-readable console output.
	// Env: LAUNCHPATCH_LOG_PRETTY
	Pretty bool `env:"PRETTY" json:"pretty"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Launch.FilePath == "" {
		cfg.Launch.FilePath = DefaultLaunchFile
	}
	if cfg.Launch.ExecutableSuffix == "" {
		cfg.Launch.ExecutableSuffix = DefaultExecutableSuffix
	}
	if cfg.Launch.Indent == 0 {
		cfg.Launch.Indent = DefaultIndent
	}
	if cfg.West.Binary == "" {
		cfg.West.Binary = DefaultWestBinary
	}
	if cfg.History.DSN == "" {
		cfg.History.DSN = DefaultHistoryDSN
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
