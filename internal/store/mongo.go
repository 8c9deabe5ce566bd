// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
)

// MongoDB is a connected client together with the database holding the
// notes collection.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB and pings the primary. Startup fails
// when the server is unreachable within cfg.ConnectTimeout.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerMonitor(newServerMonitor(log))

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("%w: connect mongo: %w", ErrStorage, err)
	}

	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping mongo: %w", ErrStorageUnavailable, err)
	}

	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("MongoDB connected")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%w: disconnect mongo: %w", ErrStorage, err)
	}
	m.logger.Info().Str("func", "*MongoDB.Close").Msg("MongoDB disconnected")
	return nil
}

// newServerMonitor logs topology changes so lost connections show up in
// the server log.
func newServerMonitor(log *logger.Logger) *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerOpening: func(e *event.ServerOpeningEvent) {
			log.Debug().Str("address", e.Address.String()).Msg("MongoDB server opening")
		},
		ServerClosed: func(e *event.ServerClosedEvent) {
			log.Warn().Str("address", e.Address.String()).Msg("MongoDB disconnected")
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			log.Err(e.Failure).Str("connection_id", e.ConnectionID).Msg("MongoDB connection error")
		},
	}
}
