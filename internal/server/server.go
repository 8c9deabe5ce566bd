// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/handler"
	"github.com/MKhiriev/go-notes-board/internal/logger"
)

// Runner is started together with the servers and stopped with them.
// Background workers satisfy it.
type Runner interface {
	Run(ctx context.Context)
}

// Servers runs the enabled transports and background runners.
type Servers struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	runners    []Runner

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

const defaultShutdownTimeout = 10 * time.Second

// NewServer creates the servers enabled in cfg. runners are started in
// Run and receive the context that is cancelled on shutdown.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, runners ...Runner) (*Servers, error) {
	logger.Info().Msg("creating new server...")
	servers := &Servers{
		runners:         runners,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// Run starts every server and runner, then blocks until ctx is done or
// SIGTERM, SIGINT or SIGQUIT arrives. A server that fails to start stops
// the others.
func (s *Servers) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	for _, transport := range s.transports() {
		group.Go(transport.RunServer)
	}
	for _, runner := range s.runners {
		group.Go(func() error {
			runner.Run(groupCtx)
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Info().Msg("stopping servers")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(groupCtx), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err := group.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

// Shutdown stops every created server.
func (s *Servers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, transport := range s.transports() {
		errs = append(errs, transport.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (s *Servers) transports() []Server {
	var transports []Server
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}
