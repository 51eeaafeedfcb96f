// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/zephyr-launch/internal/adapter"
	"github.com/MKhiriev/zephyr-launch/internal/config"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/internal/service"
	"github.com/MKhiriev/zephyr-launch/internal/store"
	"github.com/MKhiriev/zephyr-launch/models"
)

const memoryDSN = ":memory:"

// App is the launchpatch runtime. Create it with [NewApp] and release it
// with [App.Close].
type App struct {
	cfg       *config.StructuredConfig
	services  *service.Services
	clipboard adapter.ClipboardAdapter
	closer    io.Closer

	workDir string
	out     io.Writer
	logger  *logger.Logger
}

// NewApp resolves the working directory, sets up the storages, and builds the
// services for cfg. The history journal is only opened when it is first
// used. west reads from in; confirmation lines and west output go to out,
// west diagnostics to errOut.
func NewApp(cfg *config.StructuredConfig, in io.Reader, out, errOut io.Writer, log *logger.Logger) (*App, error) {
	workDir, err := resolveWorkDir(cfg.Workspace.Dir)
	if err != nil {
		return nil, err
	}

	historyCfg := cfg.History
	historyCfg.DSN = resolvePath(workDir, historyCfg.DSN)

	storages := store.NewStorages(historyCfg, log)

	west := adapter.NewWestAdapter(cfg.West.Binary, in, out, errOut, log)
	services := service.NewServices(storages, west, log)

	return newApp(cfg, services, adapter.NewClipboardAdapter(), storages, workDir, out, log), nil
}

func newApp(cfg *config.StructuredConfig, services *service.Services, clipboard adapter.ClipboardAdapter,
	closer io.Closer, workDir string, out io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		services:  services,
		clipboard: clipboard,
		closer:    closer,
		workDir:   workDir,
		out:       out,
		logger:    log,
	}
}

// WorkDir returns the resolved absolute working directory.
func (a *App) WorkDir() string {
	return a.workDir
}

// LaunchFilePath returns the absolute path of the configured launch file.
func (a *App) LaunchFilePath() string {
	return resolvePath(a.workDir, a.cfg.Launch.FilePath)
}

func (a *App) Patch(ctx context.Context) (models.PatchResult, error) {
	result, err := a.services.SettingsPatcher.Patch(ctx, models.PatchRequest{
		FilePath:           a.LaunchFilePath(),
		WorkingDir:         a.workDir,
		ExecutableSuffix:   a.cfg.Launch.ExecutableSuffix,
		ConfigurationIndex: a.cfg.Launch.ConfigurationIndex,
		Indent:             a.cfg.Launch.Indent,
	})
	if err != nil {
		return models.PatchResult{}, err
	}

	fmt.Fprintln(a.out, MsgLaunchFileUpdated)

	if a.cfg.Launch.CopyToClipboard {
		a.copyExecutable(ctx, result.NewExecutable)
	}

	return result, nil
}

// copyExecutable is best effort: the file is already patched.
func (a *App) copyExecutable(ctx context.Context, executable string) {
	if err := a.clipboard.Copy(executable); err != nil {
		a.logger.Ctx(ctx).Warn().Err(err).Msg("could not copy executable path to clipboard")
		return
	}
	fmt.Fprintln(a.out, MsgCopiedToClipboard)
}

func (a *App) Build(ctx context.Context, req models.BuildRequest, patchAfter bool) error {
	if err := a.services.WestService.Build(ctx, a.workDir, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, MsgBuildFinished)

	if !patchAfter {
		return nil
	}

	_, err := a.Patch(ctx)
	return err
}

func (a *App) Flash(ctx context.Context) error {
	if err := a.services.WestService.Flash(ctx, a.workDir); err != nil {
		return err
	}
	fmt.Fprintln(a.out, MsgFlashFinished)
	return nil
}

func (a *App) History(ctx context.Context, limit uint64, all bool) ([]models.PatchHistoryEntry, error) {
	filePath := a.LaunchFilePath()
	if all {
		filePath = ""
	}
	return a.services.HistoryService.List(ctx, filePath, limit)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Join(service.ErrWorkingDirUnavailable, err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Join(service.ErrWorkingDirUnavailable, err)
	}

	return abs, nil
}

// resolvePath joins relative paths onto dir. The sqlite in-memory DSN is
// left alone.
func resolvePath(dir, path string) string {
	if path == "" || path == memoryDSN || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
