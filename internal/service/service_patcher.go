// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/internal/store"
	"github.com/MKhiriev/zephyr-launch/internal/utils"
	"github.com/MKhiriev/zephyr-launch/models"
)

type settingsPatcher struct {
	launchFiles store.LaunchFileStorage
	history     store.HistoryRepository
	logger      *logger.Logger

	getwd func() (string, error)
	now   func() time.Time
	newID func() string
}

// NewSettingsPatcher constructs a [SettingsPatcher] over the given launch file
// storage. Every successful patch is recorded in history.
func NewSettingsPatcher(launchFiles store.LaunchFileStorage, history store.HistoryRepository, logger *logger.Logger) SettingsPatcher {
	return &settingsPatcher{
		launchFiles: launchFiles,
		history:     history,
		logger:      logger,
		getwd:       os.Getwd,
		now:         time.Now,
		newID:       utils.NewOrderedID,
	}
}

func (p *settingsPatcher) Patch(ctx context.Context, req models.PatchRequest) (models.PatchResult, error) {
	log := p.logger.Ctx(ctx)

	workDir, err := p.resolveWorkingDir(req.WorkingDir)
	if err != nil {
		return models.PatchResult{}, err
	}

	filePath := req.FilePath
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workDir, filePath)
	}

	doc, err := p.launchFiles.Load(ctx, filePath)
	if err != nil {
		return models.PatchResult{}, fmt.Errorf("error loading launch file: %w", err)
	}

	executable := filepath.Join(workDir, req.ExecutableSuffix)

	previous, err := setExecutable(doc, req.ConfigurationIndex, executable)
	if err != nil {
		log.Err(err).
			Str("func", "settingsPatcher.Patch").
			Str("path", filePath).
			Int("index", req.ConfigurationIndex).
			Msg("launch file has an unexpected shape")
		return models.PatchResult{}, fmt.Errorf("error patching %s: %w", filePath, err)
	}

	if err = p.launchFiles.Save(ctx, filePath, doc, req.Indent); err != nil {
		return models.PatchResult{}, fmt.Errorf("error saving launch file: %w", err)
	}

	result := models.PatchResult{
		FilePath:           filePath,
		WorkingDir:         workDir,
		ConfigurationIndex: req.ConfigurationIndex,
		PreviousExecutable: previous,
		NewExecutable:      executable,
	}

	log.Info().
		Str("path", filePath).
		Str("previous", previous).
		Str("executable", executable).
		Bool("changed", result.Changed()).
		Msg("launch file patched")

	p.record(ctx, result)

	return result, nil
}

// record journals result. The launch file is already written at this point,
// so a journal failure is only logged.
func (p *settingsPatcher) record(ctx context.Context, result models.PatchResult) {
	entry := models.PatchHistoryEntry{
		ID:                 p.newID(),
		FilePath:           result.FilePath,
		ConfigurationIndex: result.ConfigurationIndex,
		PreviousExecutable: result.PreviousExecutable,
		NewExecutable:      result.NewExecutable,
		WorkingDir:         result.WorkingDir,
		PatchedAt:          p.now().UTC(),
	}

	if err := p.history.SavePatch(ctx, entry); err != nil {
		p.logger.Ctx(ctx).Warn().Err(err).Str("id", entry.ID).Msg("patch applied but not recorded in history")
	}
}

func (p *settingsPatcher) resolveWorkingDir(dir string) (string, error) {
	if dir == "" {
		wd, err := p.getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWorkingDirUnavailable, err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDirUnavailable, err)
	}

	return abs, nil
}

// setExecutable assigns executable to configurations[index].executable inside
// doc and returns the previous string value, if there was one. An entry
// without an executable field gets one.
func setExecutable(doc models.LaunchDocument, index int, executable string) (string, error) {
	raw, ok := doc.Configurations()
	if !ok {
		return "", fmt.Errorf("%w: %q is missing", ErrNoConfigurations, models.ConfigurationsKey)
	}

	configurations, ok := raw.([]any)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, not an array", ErrNoConfigurations, models.ConfigurationsKey, raw)
	}

	if len(configurations) == 0 {
		return "", fmt.Errorf("%w: %q is empty", ErrNoConfigurations, models.ConfigurationsKey)
	}

	if index < 0 || index >= len(configurations) {
		return "", fmt.Errorf("%w: index %d, %d configuration(s)",
			ErrConfigurationIndexOutOfRange, index, len(configurations))
	}

	entry, ok := configurations[index].(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: index %d is %T", ErrInvalidConfigurationEntry, index, configurations[index])
	}

	previous, _ := entry[models.ExecutableKey].(string)
	entry[models.ExecutableKey] = executable

	return previous, nil
}
