package http

import (
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
)

type Handler struct {
	services  *service.Services
	queue     store.QueueRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, queue store.QueueRepository, logger *logger.Logger) *Handler {
	logger.Info().Msg("admin http handler created")
	return &Handler{
		services:  services,
		queue:     queue,
		validator: validators.NewQueueValidator(),
		logger:    logger,
	}
}
