package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/crypto"
	httphandler "github.com/MKhiriev/go-pass-autofill/internal/handler/http"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/repository"
	"github.com/MKhiriev/go-pass-autofill/internal/server"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/workers"
	"github.com/MKhiriev/go-pass-autofill/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAgentLogger("go-pass-autofill")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	secretStore, err := store.NewFileSecretStore(cfg.Storage.Secrets.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret store")
	}

	vaultDB, err := repository.OpenVaultDB(cfg.Storage.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening vault db")
	}
	defer vaultDB.Close()

	if err = migrations.Migrate(vaultDB); err != nil {
		log.Fatal().Err(err).Msg("error migrating vault db")
	}

	bridge, err := adapter.NewHTTPBridge(adapter.HTTPBridgeConfig{
		BaseURL:     cfg.Bridge.BaseURL,
		SignKey:     cfg.App.BridgeSignKey,
		TokenIssuer: cfg.App.TokenIssuer,
		TokenTTL:    cfg.App.TokenDuration,
		Timeout:     cfg.Bridge.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating runtime bridge")
	}

	sessions := session.NewCache()
	services := service.NewServices(service.Dependencies{
		Store:      secretStore,
		Keychain:   crypto.NewKeyChainService(),
		Sessions:   sessions,
		Repository: repository.NewSQLiteVaultRepository(vaultDB),
		Bridge:     bridge,
		Logger:     log,
	})

	handler := httphandler.NewHandler(services, sessions, cfg.App.BridgeSignKey, cfg.App.TokenIssuer, cfg.App.SessionTTL, log)

	resyncJob := workers.NewSettingsResyncJob(services.Settings, cfg.Workers.SyncInterval, log)
	workers.NewWorkers(resyncJob).Run()
	defer resyncJob.Stop()

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
