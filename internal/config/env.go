// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds the variables understood by earlier deployments of the
// notes board. They only fill fields left empty by the structured variables.
type legacyEnv struct {
	MongoURI string `env:"MONGODB_URI"`
	Port     string `env:"PORT"`
}

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}

	if cfg.Storage.Mongo.URI == "" {
		cfg.Storage.Mongo.URI = legacy.MongoURI
	}
	if cfg.Server.HTTPAddress == "" && legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return nil
}
