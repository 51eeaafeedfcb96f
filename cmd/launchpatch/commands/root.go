// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the launchpatch command tree.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/app"
	"github.com/MKhiriev/zephyr-launch/internal/config"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
)

const loggerRole = "launchpatch"

var (
	ErrConfigFailed = errors.New("configuration failed")
	ErrLoggerFailed = errors.New("logger setup failed")
)

const longDesc = `launchpatch points the "executable" of a debugger launch configuration
(.vscode/launch.json by default) at the Zephyr image built in the current
directory: <cwd>/build/zephyr/zephyr.elf.

Run without a subcommand to patch the launch file. The build and flash
subcommands wrap west.`

// rootState is shared by every command of one invocation.
type rootState struct {
	flags *config.Flags
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

// NewRootCmd returns the launchpatch root command. Running it without a
// subcommand patches the launch file.
func NewRootCmd(info models.AppBuildInfo) *cobra.Command {
	state := &rootState{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "launchpatch",
		Short:         "Point a debugger launch configuration at the local Zephyr build",
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.BuildVersion(),
		Args:          cobra.NoArgs,
	}

	state.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(state.flags)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfigFailed, err)
		}

		if err = logger.SetLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrLoggerFailed, err)
		}

		state.cfg = cfg
		state.log = logger.New(cc.ErrOrStderr(), loggerRole, cfg.Log.Pretty)
		cc.SetContext(state.log.WithContext(cc.Context()))

		state.log.Debug().Str("command", cc.Name()).Msg("ready to go")

		return nil
	}

	cmd.RunE = runPatch(state)

	cmd.AddCommand(NewPatchCmd(state))
	cmd.AddCommand(NewBuildCmd(state))
	cmd.AddCommand(NewFlashCmd(state))
	cmd.AddCommand(NewHistoryCmd(state))
	cmd.AddCommand(NewVersionCmd(info))

	return cmd
}

// withApp builds the runtime for one command and closes it afterwards.
func withApp(state *rootState, cc *cobra.Command, fn func(a *app.App) error) error {
	a, err := app.NewApp(state.cfg, cc.InOrStdin(), cc.OutOrStdout(), cc.ErrOrStderr(), state.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			state.log.Warn().Err(err).Msg("error closing storages")
		}
	}()

	return fn(a)
}
