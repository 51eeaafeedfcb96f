package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/internal/store"
	"github.com/MKhiriev/zephyr-launch/models"
)

type historyService struct {
	history store.HistoryRepository
	logger  *logger.Logger
}

func NewHistoryService(history store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{history: history, logger: logger}
}

func (s *historyService) List(ctx context.Context, filePath string, limit uint64) ([]models.PatchHistoryEntry, error) {
	entries, err := s.history.ListPatches(ctx, filePath, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing patch history: %w", err)
	}

	s.logger.Ctx(ctx).Debug().Str("file_path", filePath).Int("entries", len(entries)).Msg("patch history listed")
	return entries, nil
}
