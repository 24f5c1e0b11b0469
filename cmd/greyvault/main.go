package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/greyvault/internal/client"
	"github.com/MKhiriev/greyvault/internal/config"
	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/MKhiriev/greyvault/internal/store"
	"github.com/MKhiriev/greyvault/internal/tui"
	"github.com/MKhiriev/greyvault/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		memguard.SafeExit(1)
	}
}

func run() error {
	printBuildInfo()

	bootLog := logger.NewLogger("greyvault")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		bootLog.Err(err).Msg("error getting configs")
		return err
	}

	log, logFile, err := logger.NewFileLogger("greyvault", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Err(err).Msg("error opening log file")
		return err
	}
	defer logFile.Close()

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("open vault %s: %w", cfg.Storage.DB.DSN, err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewClientServices(storages, cfg.Crypto, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Msg("create client services")
		return err
	}

	ui, err := tui.New(services, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Msg("error creating ui")
		return err
	}

	app, err := client.NewApp(ui, storages, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Msg("init client app error")
		return err
	}

	return app.Run(ctx)
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
