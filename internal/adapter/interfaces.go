// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over the external programs and
// system facilities launchpatch talks to.
//
// [WestAdapter] runs the Zephyr west meta-tool; [ClipboardAdapter] writes to
// the system clipboard. Error values defined in errors.go let callers use
// [errors.Is] without depending on os/exec details.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WestAdapter runs west subcommands.
type WestAdapter interface {
	// Run executes west with args in dir and waits for it to finish. The
	// child's stdout and stderr are streamed to the adapter's writers.
	// Returns [ErrWestNotFound] when the binary cannot be located and
	// [ErrWestFailed] when it exits non-zero.
	Run(ctx context.Context, dir string, args ...string) error
}

// ClipboardAdapter writes text to the system clipboard.
type ClipboardAdapter interface {
	Copy(text string) error
}
