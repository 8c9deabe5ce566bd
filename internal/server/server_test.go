// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/handler"
	"github.com/MKhiriev/go-notes-board/internal/identity"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
)

type blockingRunner struct {
	started atomic.Bool
}

func (r *blockingRunner) Run(ctx context.Context) {
	r.started.Store(true)
	<-ctx.Done()
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, identity.NewAnonymousProvider(""), cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)
	assert.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)
	assert.Len(t, s.transports(), 2)
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServers_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	runner := &blockingRunner{}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop(), runner)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- s.Run(ctx) }()

	require.Eventually(t, runner.started.Load, time.Second, time.Millisecond)
	cancel()

	select {
	case err = <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServers_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{GRPCAddress: busy.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop(), &blockingRunner{})
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
