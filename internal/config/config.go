// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers accepted in Storage.Driver.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration container of the notes
// board. It is populated by merging environment variables, command-line
// flags and an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, paging limits and the version string.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the terminal client to reach a server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of every supported backend. Only the
// section matching Driver is used.
type Storage struct {
	// Driver is one of DriverMongo, DriverPostgres, DriverSQLite, DriverMemory.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Mongo holds the document store connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// DB holds connection settings for the postgres and sqlite backends.
type DB struct {
	// DSN is a PostgreSQL connection string or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mongo holds connection settings for the MongoDB backend.
type Mongo struct {
	// URI is the MongoDB connection string.
	// Env: STORAGE_MONGO_URI, falls back to MONGODB_URI.
	URI string `env:"URI"`

	// Database is the database holding the notes collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey enables bearer-token identities when non-empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AnonymousName is the display name given to callers without a token.
	// Env: APP_ANONYMOUS_NAME
	AnonymousName string `env:"ANONYMOUS_NAME"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DefaultPageSize is used when a list request carries no valid limit.
	// Env: APP_DEFAULT_PAGE_SIZE
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE"`

	// MaxPageSize caps the limit a caller may request.
	// Env: APP_MAX_PAGE_SIZE
	MaxPageSize int `env:"MAX_PAGE_SIZE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address of the HTTP API.
	// Env: SERVER_ADDRESS, falls back to ":$PORT".
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of both servers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the client side view of a server.
type Adapter struct {
	// HTTPAddress is the base URL of the notes API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// HealthInterval is how often the store is pinged to refresh the
	// gRPC serving status.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, completes and validates the server
// configuration. For a given field the first non-zero value wins in this
// order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
