package workers

import (
	"context"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires the background workers of the daemon. Currently a single
// drain worker reacting to connectivity transitions.
func NewWorkers(ctx context.Context, services *service.Services, identity config.Identity, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newDrainWorker(ctx, services.Monitor, services.Arbiter, services.Engine, identity.TenantID, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
