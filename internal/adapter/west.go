package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
)

type execWestAdapter struct {
	binary string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *logger.Logger
}

// NewWestAdapter returns a [WestAdapter] that starts binary with os/exec,
// connects stdin to it (interactive targets such as menuconfig read from the
// terminal), and forwards its output to stdout and stderr.
func NewWestAdapter(binary string, stdin io.Reader, stdout, stderr io.Writer, logger *logger.Logger) WestAdapter {
	return &execWestAdapter{
		binary: binary,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

func (a *execWestAdapter) Run(ctx context.Context, dir string, args ...string) error {
	log := a.logger.Ctx(ctx)

	cmd := exec.CommandContext(ctx, a.binary, args...)
	cmd.Dir = dir
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	commandLine := a.binary + " " + strings.Join(args, " ")
	log.Info().Str("dir", dir).Str("command", commandLine).Msg("running west")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	log.Err(err).Str("func", "execWestAdapter.Run").Str("command", commandLine).Msg("west command failed")

	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %q: %w", ErrWestNotFound, a.binary, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %q exited with code %d", ErrWestFailed, commandLine, exitErr.ExitCode())
	}

	return fmt.Errorf("%w: %q: %w", ErrWestFailed, commandLine, err)
}
