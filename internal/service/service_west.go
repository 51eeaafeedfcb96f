package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/zephyr-launch/internal/adapter"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
)

type westService struct {
	west   adapter.WestAdapter
	logger *logger.Logger
}

func NewWestService(west adapter.WestAdapter, logger *logger.Logger) WestService {
	return &westService{west: west, logger: logger}
}

// BuildArgs composes `build [-p always] -b <board> [<project>] [-t <target>]`.
func (s *westService) BuildArgs(req models.BuildRequest) ([]string, error) {
	board := strings.TrimSpace(req.Board)
	if board == "" {
		return nil, ErrNoBoardProvided
	}

	if !req.ConfigTarget.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigTarget, req.ConfigTarget)
	}

	args := []string{"build"}
	if req.Pristine {
		args = append(args, "-p", "always")
	}
	args = append(args, "-b", board)
	if req.ProjectPath != "" {
		args = append(args, req.ProjectPath)
	}
	if req.ConfigTarget != models.NoConfigTarget {
		args = append(args, "-t", string(req.ConfigTarget))
	}

	return args, nil
}

func (s *westService) Build(ctx context.Context, dir string, req models.BuildRequest) error {
	args, err := s.BuildArgs(req)
	if err != nil {
		return err
	}

	log := s.logger.Ctx(ctx)
	log.Debug().Str("board", req.Board).Bool("pristine", req.Pristine).Msg("starting west build")

	if err = s.west.Run(ctx, dir, args...); err != nil {
		log.Err(err).Str("func", "westService.Build").Str("board", req.Board).Msg("west build failed")
		return fmt.Errorf("error building for board %s: %w", req.Board, err)
	}

	return nil
}

func (s *westService) Flash(ctx context.Context, dir string) error {
	if err := s.west.Run(ctx, dir, "flash"); err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "westService.Flash").Msg("west flash failed")
		return fmt.Errorf("error flashing: %w", err)
	}

	return nil
}
