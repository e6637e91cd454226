// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/handler"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/metrics"
	"github.com/MKhiriev/unified-ai-lab/internal/server"
	"github.com/MKhiriev/unified-ai-lab/internal/service"
	"github.com/MKhiriev/unified-ai-lab/models"
)

const role = "lab-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var dotenvFiles = []string{".env", ".env.local"}

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := run(os.Args[1:], dotenvFiles, buildInfo); err != nil {
		os.Exit(1)
	}
}

// run returns only after the logger is closed, so fatal startup errors
// reach app.log before the process exits.
func run(args, dotenv []string, buildInfo models.AppBuildInfo) error {
	bootstrap := logger.NewLogger(role)

	snapshot, err := config.LoadSnapshot(dotenv...)
	if err != nil {
		bootstrap.Error().Err(err).Msg("error loading environment")
		return err
	}

	cfg, err := config.GetStructuredConfig(snapshot, args)
	if err != nil {
		bootstrap.Error().Err(err).Msg("error getting configs")
		return err
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		bootstrap.Error().Err(err).Msg("error creating logger")
		return err
	}
	defer log.Close()

	log.Debug().Any("config", cfg).Int("env_vars", snapshot.Len()).Msg("received configs")

	accessor := config.NewAccessor(snapshot)
	serverEnv, err := accessor.Server(config.WithScope(context.Background(), config.ScopeTrusted))
	result := metrics.RecordServerConfigCheck(err)
	if err != nil {
		event := log.Error().Err(err).Str("result", result)
		var missing *config.MissingValueError
		if errors.As(err, &missing) {
			event = event.Str("key", missing.Key)
		}
		event.Msg("server environment is incomplete")
		return err
	}
	log.Info().Object("server_env", serverEnv).Msg("server environment validated")

	services, err := service.NewServices(accessor, cfg.App, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}

func newLogger(cfg config.Log) (*logger.Logger, error) {
	if err := logger.SetLevel(cfg.Level); err != nil {
		return nil, err
	}
	if cfg.Dir == "" {
		return logger.NewLogger(role), nil
	}
	return logger.NewFileLogger(role, cfg.Dir)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
