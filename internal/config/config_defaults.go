// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress       = ":5000"
	defaultGRPCAddress       = ":5001"
	defaultRequestTimeout    = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultMongoURI          = "mongodb://localhost:27017"
	defaultMongoDatabase     = "test" // Mongoose default when the URI names no database
	defaultMongoTimeout      = 10 * time.Second
	defaultSQLiteDSN         = "notes.db"
	defaultTokenIssuer       = "go-notes-board"
	defaultAnonymousName     = "Anonymous"
	defaultVersion           = "dev"
	defaultLogLevel          = "debug"
	defaultPageSize          = 10
	defaultMaxPageSize       = 100
	defaultHealthInterval    = 15 * time.Second
	defaultAdapterAddress    = "http://localhost:5000"
	defaultAdapterTimeout    = 10 * time.Second
	defaultCORSAllowedOrigin = "*"
)

// applyDefaults fills every zero field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.GRPCAddress, defaultGRPCAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, defaultShutdownTimeout)
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{defaultCORSAllowedOrigin}
	}

	setDefault(&cfg.Storage.Driver, DriverMongo)
	setDefault(&cfg.Storage.Mongo.URI, defaultMongoURI)
	setDefault(&cfg.Storage.Mongo.Database, defaultMongoDatabase)
	setDefault(&cfg.Storage.Mongo.ConnectTimeout, defaultMongoTimeout)
	if cfg.Storage.Driver == DriverSQLite {
		setDefault(&cfg.Storage.DB.DSN, defaultSQLiteDSN)
	}

	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.AnonymousName, defaultAnonymousName)
	setDefault(&cfg.App.Version, defaultVersion)
	setDefault(&cfg.App.LogLevel, defaultLogLevel)
	setDefault(&cfg.App.DefaultPageSize, defaultPageSize)
	setDefault(&cfg.App.MaxPageSize, defaultMaxPageSize)

	setDefault(&cfg.Adapter.HTTPAddress, defaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, defaultAdapterTimeout)

	setDefault(&cfg.Workers.HealthInterval, defaultHealthInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
