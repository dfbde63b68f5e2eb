package main

import (
	"context"
	"fmt"

	"github.com/akudrin/offsync/internal/adapter"
	"github.com/akudrin/offsync/internal/config"
	myHTTP "github.com/akudrin/offsync/internal/handler/http"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/server"
	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("offsyncd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	remote, err := adapter.NewHTTPRemoteAPI(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote adapter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Remote.Login != "" {
		if err := remote.Login(ctx, cfg.Remote.Login, cfg.Remote.Password); err != nil {
			// queued work waits for the next online transition
			log.Warn().Err(err).Msg("remote login failed, starting offline")
		}
	}

	services := service.NewServices(storages, remote, cfg, log)

	device, err := storages.Identity.DeviceIdentity(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving device identity")
	}
	services.Arbiter.SetDeviceID(device.ID)

	workers.NewWorkers(ctx, services, cfg.Identity, log).Run()
	defer services.Monitor.StopMonitoring()
	defer services.Engine.Stop()

	handlers := myHTTP.NewHandler(services, storages.Queue, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
