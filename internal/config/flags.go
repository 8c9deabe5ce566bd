// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means "all
// interfaces", so ":5000" is accepted.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a               HTTP listen address in format [host]:port
//	-grpc-address    gRPC listen address in format [host]:port
//	-request-timeout request timeout (e.g. "10s")
//	-storage         storage driver: mongo, postgres, sqlite or memory
//	-d               postgres DSN or sqlite file path
//	-mongo-uri       MongoDB connection string
//	-mongo-db        MongoDB database name
//	-c / -config     JSON config file path
//	-token-sign-key  bearer token signing key
//	-token-issuer    bearer token issuer
//	-log-level       log level
//	-health-interval store health check interval
//	-server          base URL of the notes API (client)
//	-client-timeout  client request timeout
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&httpAddress, "a", "HTTP listen address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address [host]:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: mongo, postgres, sqlite, memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN or sqlite file")
	fs.StringVar(&cfg.Storage.Mongo.URI, "mongo-uri", "", "MongoDB URI")
	fs.StringVar(&cfg.Storage.Mongo.Database, "mongo-db", "", "MongoDB database")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Workers.HealthInterval, "health-interval", 0, "Store health check interval")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Notes API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "client-timeout", 0, "Client request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return cfg, nil
}

// String returns a host:port string, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. Host may be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
