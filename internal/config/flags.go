package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values of every configuration flag after the command line
// has been parsed. Create it with [RegisterFlags] before parsing.
type Flags struct {
	fs *pflag.FlagSet

	jsonConfigPath     string
	launchFile         string
	executableSuffix   string
	configurationIndex int
	indent             int
	copyToClipboard    bool
	workspaceDir       string
	westBinary         string
	board              string
	pristine           bool
	projectPath        string
	configTarget       string
	historyDSN         string
	noHistory          bool
	logLevel           string
	logPretty          bool
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	-f/--file launch configuration file
//	--suffix executable path relative to the working directory
//	-i/--index index inside "configurations" to patch
//	--indent indentation width of the written file
//	--copy copy the new executable path to the clipboard
//	-C/--dir working directory override
//	--west west executable
//	-b/--board board name for west build
//	-p/--pristine clean build directory
//	--project application source directory
//	-t/--target Kconfig target (menuconfig, guiconfig)
//	--history history database file
//	--no-history disable the patch journal
//	--log-level log level
//	--log-pretty human-readable logs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&f.launchFile, "file", "f", "", "Launch configuration file (default "+DefaultLaunchFile+")")
	fs.StringVar(&f.executableSuffix, "suffix", "", "Executable path relative to the working directory (default "+DefaultExecutableSuffix+")")
	fs.IntVarP(&f.configurationIndex, "index", "i", 0, "Index inside \"configurations\" to patch")
	fs.IntVar(&f.indent, "indent", 0, "Indentation width of the written file (default 4)")
	fs.BoolVar(&f.copyToClipboard, "copy", false, "Copy the new executable path to the clipboard")
	fs.StringVarP(&f.workspaceDir, "dir", "C", "", "Working directory override")
	fs.StringVar(&f.westBinary, "west", "", "West executable (default "+DefaultWestBinary+")")
	fs.StringVarP(&f.board, "board", "b", "", "Board name passed to west build")
	fs.BoolVarP(&f.pristine, "pristine", "p", false, "Always start from a clean build directory")
	fs.StringVar(&f.projectPath, "project", "", "Application source directory passed to west build")
	fs.StringVarP(&f.configTarget, "target", "t", "", "Kconfig target (menuconfig, guiconfig)")
	fs.StringVar(&f.historyDSN, "history", "", "Patch history database file (default "+DefaultHistoryDSN+")")
	fs.BoolVar(&f.noHistory, "no-history", false, "Do not record patches in the history database")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&f.logPretty, "log-pretty", false, "Human-readable log output")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Launch: Launch{
			FilePath:           f.launchFile,
			ExecutableSuffix:   f.executableSuffix,
			ConfigurationIndex: f.configurationIndex,
			Indent:             f.indent,
			CopyToClipboard:    f.copyToClipboard,
		},
		Workspace: Workspace{
			Dir: f.workspaceDir,
		},
		West: West{
			Binary:       f.westBinary,
			Board:        f.board,
			Pristine:     f.pristine,
			ProjectPath:  f.projectPath,
			ConfigTarget: f.configTarget,
		},
		History: History{
			DSN:      f.historyDSN,
			Disabled: f.noHistory,
		},
		Log: Log{
			Level:  f.logLevel,
			Pretty: f.logPretty,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

// applyExplicit copies every flag given on the command line into cfg, zero
// values included. Merging skips zero values, so without this `--copy=false`
// or `--index 0` could not override an environment variable.
func (f *Flags) applyExplicit(cfg *StructuredConfig) {
	if f.fs == nil {
		return
	}

	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "config":
			cfg.JSONFilePath = f.jsonConfigPath
		case "file":
			cfg.Launch.FilePath = f.launchFile
		case "suffix":
			cfg.Launch.ExecutableSuffix = f.executableSuffix
		case "index":
			cfg.Launch.ConfigurationIndex = f.configurationIndex
		case "indent":
			cfg.Launch.Indent = f.indent
		case "copy":
			cfg.Launch.CopyToClipboard = f.copyToClipboard
		case "dir":
			cfg.Workspace.Dir = f.workspaceDir
		case "west":
			cfg.West.Binary = f.westBinary
		case "board":
			cfg.West.Board = f.board
		case "pristine":
			cfg.West.Pristine = f.pristine
		case "project":
			cfg.West.ProjectPath = f.projectPath
		case "target":
			cfg.West.ConfigTarget = f.configTarget
		case "history":
			cfg.History.DSN = f.historyDSN
		case "no-history":
			cfg.History.Disabled = f.noHistory
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-pretty":
			cfg.Log.Pretty = f.logPretty
		}
	})
}
