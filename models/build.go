package models

// ConfigTarget is an optional interactive Kconfig target passed to
// `west build -t`.
type ConfigTarget string

const (
	// NoConfigTarget runs a plain build.
	NoConfigTarget ConfigTarget = ""
	// MenuConfig opens the terminal Kconfig editor.
	MenuConfig ConfigTarget = "menuconfig"
	// GUIConfig opens the graphical Kconfig editor.
	GUIConfig ConfigTarget = "guiconfig"
)

// Valid reports whether t is one of the supported targets.
func (t ConfigTarget) Valid() bool {
	switch t {
	case NoConfigTarget, MenuConfig, GUIConfig:
		return true
	default:
		return false
	}
}

// BuildRequest carries the parameters of a single `west build` invocation.
type BuildRequest struct {
	// Board is the Zephyr board name passed with -b (e.g. "sam_e54_xpro").
	Board string
	// Pristine forces a clean build directory ("-p always").
	Pristine bool
	// ProjectPath is the application source directory. Empty means the
	// current directory.
	ProjectPath string
	// ConfigTarget optionally selects a Kconfig editor target.
	ConfigTarget ConfigTarget
}
