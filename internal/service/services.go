package service

import (
	"github.com/akudrin/offsync/internal/adapter"
	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
)

type Services struct {
	Monitor ConnectionMonitor
	Arbiter LockArbiter
	Engine  SyncEngine
}

func NewServices(storages *store.Storages, remote adapter.RemoteAPI, cfg *config.Config, log *logger.Logger) *Services {
	monitor := NewConnectionMonitor(remote, cfg.Monitor, log)

	arbiter := NewLockArbiter(storages.Locks, monitor, cfg.Lock, log)
	arbiter.SetUserContext(cfg.Identity.UserID, cfg.Identity.UserLabel, cfg.Identity.TenantID)

	engine := NewSyncEngine(storages.Queue, remote, validators.NewQueueValidator(), cfg.Engine, log)

	return &Services{
		Monitor: monitor,
		Arbiter: arbiter,
		Engine:  engine,
	}
}
