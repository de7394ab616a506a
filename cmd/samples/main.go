// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ziqni/ziqni-go-samples/internal/app"
	"github.com/ziqni/ziqni-go-samples/internal/client"
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/server"
	"github.com/ziqni/ziqni-go-samples/internal/service"
	"github.com/ziqni/ziqni-go-samples/internal/store"
	"github.com/ziqni/ziqni-go-samples/internal/tui"
	"github.com/ziqni/ziqni-go-samples/internal/workers"
	"github.com/ziqni/ziqni-go-samples/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	os.Exit(app.ExitCode(run()))
}

func run() error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("ziqni-samples").Err(err).Msg("error getting configs")
		return err
	}

	log := logger.NewLogger("ziqni-samples")
	if cfg.App.Sample == "" {
		log = logger.NewConsoleLogger("ziqni-samples")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var journal leaderboard.Journal
	if cfg.Storage.DB.DSN != "" {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			log.Err(err).Msg("error creating storages")
			return err
		}
		defer storages.Close()
		journal = storages.Deltas
	}

	services, err := service.NewServices(cfg, m, journal, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var ui client.Prompter
	if cfg.App.Sample == "" {
		ui = tui.New(buildInfo, log)
	}

	application, err := client.NewApp(cfg, services.Samples, ui, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}

	stopBackground, err := startBackground(ctx, cfg.Metrics, m, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("error creating metrics server")
		return err
	}
	defer stopBackground()

	if err = application.Run(ctx); err != nil {
		log.Err(err).Int("exit_code", app.ExitCode(err)).Msg("samples run error")
		return err
	}
	return nil
}

// startBackground runs the metrics server when an address is configured.
// The returned function stops it and waits for it to return.
func startBackground(ctx context.Context, cfg config.Metrics, m *metrics.Metrics, info models.AppBuildInfo, log *logger.Logger) (func(), error) {
	if cfg.Address == "" {
		return func() {}, nil
	}

	srv, err := server.NewServer(cfg, m, log, server.WithBuildInfo(info))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := workers.NewWorkers(srv).Run(ctx); err != nil {
			log.Err(err).Msg("background workers stopped")
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
