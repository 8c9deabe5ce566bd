// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/handler"
	"github.com/MKhiriev/go-notes-board/internal/identity"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/server"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/workers"
	"github.com/MKhiriev/go-notes-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("notes-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(context.WithoutCancel(ctx)); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, identity.NewProvider(cfg.App, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var runners []server.Runner
	if handlers.GRPC != nil {
		runners = append(runners, workers.NewWorkers(
			workers.NewHealthWorker(services.HealthService, handlers.GRPC, cfg.Workers.HealthInterval, log),
		))
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, runners...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
