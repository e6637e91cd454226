// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/unified-ai-lab/internal/adapter"
	"github.com/MKhiriev/unified-ai-lab/internal/client"
	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("lab-probe")

	snapshot, err := config.LoadSnapshot(".env", ".env.local")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}

	cfg, err := config.GetProbeConfig(snapshot, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, *cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init probe app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("probe run error")
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
