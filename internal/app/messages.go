// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, storages, adapters, and services into the
// launchpatch runtime used by the command line.
//
// All Msg* constants are human-readable lines written to standard output
// after an operation succeeds. Keeping them in one place keeps the wording
// consistent between commands.
package app

const (
	// MsgLaunchFileUpdated is printed after the launch file was rewritten.
	// Editor integrations match on this exact line.
	MsgLaunchFileUpdated = "Updated settings.json with the current path."

	// MsgCopiedToClipboard is printed after the new executable path was
	// copied to the clipboard.
	MsgCopiedToClipboard = "Copied executable path to clipboard."

	// MsgBuildFinished is printed after west build exits successfully.
	MsgBuildFinished = "Build finished."

	// MsgFlashFinished is printed after west flash exits successfully.
	MsgFlashFinished = "Flash finished."
)
