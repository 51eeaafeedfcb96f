package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultLaunchFile, cfg.Launch.FilePath)
	assert.Equal(t, DefaultExecutableSuffix, cfg.Launch.ExecutableSuffix)
	assert.Equal(t, 0, cfg.Launch.ConfigurationIndex)
	assert.Equal(t, DefaultIndent, cfg.Launch.Indent)
	assert.Equal(t, DefaultWestBinary, cfg.West.Binary)
	assert.Equal(t, DefaultHistoryDSN, cfg.History.DSN)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Launch: Launch{FilePath: "a.json"}},
		&StructuredConfig{West: West{Board: "sam_e54_xpro"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.Launch.FilePath)
	assert.Equal(t, "sam_e54_xpro", cfg.West.Board)
}

// TestBuild_LaterSourceWins verifies that a non-zero field from a later
// source overrides the same field from an earlier one, while zero fields do
// not erase earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Launch: Launch{FilePath: "env.json", Indent: 2}},
		&StructuredConfig{Launch: Launch{FilePath: "flag.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Launch.FilePath)
	assert.Equal(t, 2, cfg.Launch.Indent)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "negative index",
			cfg:     &StructuredConfig{Launch: Launch{ConfigurationIndex: -1}},
			wantErr: ErrInvalidLaunchConfigs,
		},
		{
			name:    "indent too wide",
			cfg:     &StructuredConfig{Launch: Launch{Indent: 40}},
			wantErr: ErrInvalidLaunchConfigs,
		},
		{
			name:    "negative indent",
			cfg:     &StructuredConfig{Launch: Launch{Indent: -2}},
			wantErr: ErrInvalidLaunchConfigs,
		},
		{
			name:    "absolute suffix",
			cfg:     &StructuredConfig{Launch: Launch{ExecutableSuffix: "/abs/zephyr.elf"}},
			wantErr: ErrInvalidLaunchConfigs,
		},
		{
			name:    "unknown config target",
			cfg:     &StructuredConfig{West: West{ConfigTarget: "xconfig"}},
			wantErr: ErrInvalidWestConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("LAUNCHPATCH_LAUNCH_FILE", "env-launch.json")
	t.Setenv("LAUNCHPATCH_WEST_BOARD", "env-board")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-launch.json", b.configs[0].Launch.FilePath)
	assert.Equal(t, "env-board", b.configs[0].West.Board)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("LAUNCHPATCH_LAUNCH_INDENT", "wide")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	f := parseTestFlags(t, "--file", "flag-launch.json")

	b := newConfigBuilder()
	b.withFlags(f)

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-launch.json", b.configs[0].Launch.FilePath)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredConfig{
		Launch: Launch{FilePath: "json-launch.json"},
		West:   West{Board: "json-board"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-launch.json", b.configs[1].Launch.FilePath)
	assert.Equal(t, "json-board", b.configs[1].West.Board)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, StructuredConfig{Launch: Launch{FilePath: "first.json"}})
	last := writeTempJSONConfig(t, StructuredConfig{Launch: Launch{FilePath: "last.json"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: last},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last.json", b.configs[2].Launch.FilePath)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < JSON file.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredConfig{West: West{Board: "json-board"}})

	t.Setenv("LAUNCHPATCH_LAUNCH_FILE", "env.json")
	t.Setenv("LAUNCHPATCH_WEST_BOARD", "env-board")
	t.Setenv("LAUNCHPATCH_LOG_LEVEL", "debug")

	f := parseTestFlags(t, "--file", "flag.json", "--board", "flag-board", "--config", path)

	cfg, err := GetStructuredConfig(f)
	require.NoError(t, err)

	assert.Equal(t, "flag.json", cfg.Launch.FilePath)
	assert.Equal(t, "json-board", cfg.West.Board)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestGetStructuredConfig_ExplicitZeroFlagsOverrideEnv verifies that a flag
// given on the command line wins over env even when its value is zero.
func TestGetStructuredConfig_ExplicitZeroFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LAUNCHPATCH_LAUNCH_COPY", "true")
	t.Setenv("LAUNCHPATCH_LAUNCH_CONFIGURATION_INDEX", "2")
	t.Setenv("LAUNCHPATCH_WEST_BOARD", "env-board")
	t.Setenv("LAUNCHPATCH_WEST_PRISTINE", "true")

	f := parseTestFlags(t, "--copy=false", "--index", "0", "--board", "", "--pristine=false")

	cfg, err := GetStructuredConfig(f)
	require.NoError(t, err)

	assert.False(t, cfg.Launch.CopyToClipboard)
	assert.Equal(t, 0, cfg.Launch.ConfigurationIndex)
	assert.Empty(t, cfg.West.Board)
	assert.False(t, cfg.West.Pristine)
}

func TestGetStructuredConfig_UnsetFlagsKeepEnv(t *testing.T) {
	t.Setenv("LAUNCHPATCH_LAUNCH_COPY", "true")
	t.Setenv("LAUNCHPATCH_LAUNCH_CONFIGURATION_INDEX", "2")

	cfg, err := GetStructuredConfig(parseTestFlags(t, "--file", "x.json"))
	require.NoError(t, err)

	assert.True(t, cfg.Launch.CopyToClipboard)
	assert.Equal(t, 2, cfg.Launch.ConfigurationIndex)
	assert.Equal(t, "x.json", cfg.Launch.FilePath)
}

func TestGetStructuredConfig_JSONStillOverridesFlags(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredConfig{Launch: Launch{ConfigurationIndex: 3}})

	cfg, err := GetStructuredConfig(parseTestFlags(t, "--index", "1", "--config", path))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Launch.ConfigurationIndex)
}
