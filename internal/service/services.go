package service

import (
	"github.com/MKhiriev/zephyr-launch/internal/adapter"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/internal/store"
)

type Services struct {
	SettingsPatcher SettingsPatcher
	HistoryService  HistoryService
	WestService     WestService
}

func NewServices(storages *store.Storages, west adapter.WestAdapter, logger *logger.Logger) *Services {
	return &Services{
		SettingsPatcher: NewSettingsPatcher(storages.LaunchFile, storages.History, logger),
		HistoryService:  NewHistoryService(storages.History, logger),
		WestService:     NewWestService(west, logger),
	}
}
