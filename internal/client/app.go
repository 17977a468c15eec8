// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/netmon"
	"github.com/MKhiriev/go-health-sync/internal/service"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/internal/workers"
)

// App wires the sync engine together: local storage, remote adapter,
// network monitor, services, and the background workers.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	monitor  *netmon.Monitor
	services *service.ClientServices
	workers  *workers.Workers
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteStore(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	monitor := netmon.NewMonitor(remote, cfg.Network, log)
	services := service.NewClientServices(storages, remote, monitor, cfg, log)

	return &App{
		cfg:      cfg,
		logger:   log,
		monitor:  monitor,
		services: services,
		workers:  workers.NewWorkers(monitor, services.SyncJob),
	}, nil
}

// Services exposes the wired service layer to the host application shell.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run recovers operations stranded by a previous crash, starts the
// background workers, and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.Engine.ReleaseStuckOperations(ctx); err != nil {
		return fmt.Errorf("startup recovery: %w", err)
	}

	a.workers.Run(ctx)
	defer a.services.SyncJob.Stop()
	defer a.monitor.Stop()

	a.logger.Info().
		Str("version", a.cfg.App.Version).
		Str("remote", a.cfg.Remote.BaseURL).
		Msg("sync engine running")

	<-ctx.Done()
	a.logger.Info().Msg("sync engine shutting down")

	return nil
}
