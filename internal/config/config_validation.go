// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

const maxIndent = 16

// validate checks that the final merged [StructuredConfig] can be used.
// It runs after defaults are applied, so empty strings here mean a source
// explicitly produced an unusable value.
func (cfg *StructuredConfig) validate() error {
	if cfg.Launch.ConfigurationIndex < 0 {
		return fmt.Errorf("%w: configuration index must not be negative, got %d",
			ErrInvalidLaunchConfigs, cfg.Launch.ConfigurationIndex)
	}

	if cfg.Launch.Indent < 0 || cfg.Launch.Indent > maxIndent {
		return fmt.Errorf("%w: indent must be between 0 and %d, got %d",
			ErrInvalidLaunchConfigs, maxIndent, cfg.Launch.Indent)
	}

	if filepath.IsAbs(cfg.Launch.ExecutableSuffix) {
		return fmt.Errorf("%w: executable suffix must be relative, got %q",
			ErrInvalidLaunchConfigs, cfg.Launch.ExecutableSuffix)
	}

	switch cfg.West.ConfigTarget {
	case "", "menuconfig", "guiconfig":
	default:
		return fmt.Errorf("%w: unsupported config target %q",
			ErrInvalidWestConfigs, cfg.West.ConfigTarget)
	}

	return nil
}
