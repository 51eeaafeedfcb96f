package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/internal/mock"
	"github.com/MKhiriev/zephyr-launch/internal/store"
	"github.com/MKhiriev/zephyr-launch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())

	entries := []models.PatchHistoryEntry{{ID: "id-1", PatchedAt: time.Now()}}
	repo.EXPECT().ListPatches(gomock.Any(), "/ws/.vscode/launch.json", uint64(5)).Return(entries, nil)

	got, err := svc.List(context.Background(), "/ws/.vscode/launch.json", 5)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestHistoryService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())

	repo.EXPECT().ListPatches(gomock.Any(), "", uint64(0)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.List(context.Background(), "", 0)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
