// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var supportedDrivers = []string{DriverMongo, DriverPostgres, DriverSQLite, DriverMemory}

// validate checks that the final merged [StructuredConfig] is usable at
// startup. It runs after defaults, so only values that were explicitly set
// to something wrong fail here.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(supportedDrivers, cfg.Storage.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == DriverPostgres && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: postgres requires a DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.DefaultPageSize < 1 || cfg.App.MaxPageSize < 1 {
		return fmt.Errorf("%w: page sizes must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.DefaultPageSize > cfg.App.MaxPageSize {
		return fmt.Errorf("%w: default page size exceeds max page size", ErrInvalidAppConfigs)
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PageSize < 1 {
		return ErrInvalidAppConfigs
	}

	return nil
}
