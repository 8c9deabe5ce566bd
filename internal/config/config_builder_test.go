// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that a builder without any
// source yields a fully defaulted config.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":5001", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "test", cfg.Storage.Mongo.Database)
	assert.Equal(t, 10, cfg.App.DefaultPageSize)
	assert.Equal(t, 100, cfg.App.MaxPageSize)
	assert.Equal(t, 15*time.Second, cfg.Workers.HealthInterval)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value of a
// field is kept and later sources only fill gaps.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Driver: "redis"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DRIVER", "memory")

	b := newTestBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, DriverMemory, b.configs[0].Storage.Driver)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_MAX_PAGE_SIZE", "many")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newTestBuilder("-storage", "sqlite", "-d", "/tmp/notes.db")
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.Driver)
	assert.Equal(t, "/tmp/notes.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newTestBuilder("-nope")
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Driver = "postgres"
	payload.Storage.DB.DSN = "postgres://localhost/notes"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, DriverPostgres, b.configs[1].Storage.Driver)
	assert.Equal(t, "postgres://localhost/notes", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_UsesFirstPath verifies that the JSON path from the highest
// priority source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "from-env-path"
	second := StructuredJSONConfig{}
	second.App.Version = "from-flag-path"

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-env-path", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_EnvOverridesFlagsOverridesJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json"
	payload.App.TokenIssuer = "json-issuer"
	payload.Storage.Mongo.Database = "json-db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_VERSION", "env")
	t.Setenv("CONFIG", path)

	cfg, err := newTestBuilder("-token-issuer", "flag-issuer").
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-db", cfg.Storage.Mongo.Database)
}
