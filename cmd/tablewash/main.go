package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	dlp "cloud.google.com/go/dlp/apiv2"
	"github.com/tablewash/tablewash/internal/config"
	"github.com/tablewash/tablewash/internal/logger"
	"github.com/tablewash/tablewash/internal/metrics"
	"github.com/tablewash/tablewash/internal/models"
	"github.com/tablewash/tablewash/internal/orchestrator"
	"github.com/tablewash/tablewash/internal/redact"
	"github.com/tablewash/tablewash/internal/warehouse"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.ConfigFile, err)
	}
	applyFlagOverrides(gCfg, flags)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().
		Str("source", gCfg.WarehouseConfig.InputTable).
		Str("destination", gCfg.WarehouseConfig.OutputTable).
		Int("chunk_size", gCfg.WarehouseConfig.ChunkSize).
		Msg("Configuration loaded and validated")

	// Graceful shutdown on interrupt: the orchestrator checks the context
	// between steps and between chunks.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, initiating graceful shutdown...")
		cancel()
	}()

	warehouseClient, err := warehouse.New(ctx, gCfg.WarehouseConfig.Project, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize warehouse client")
	}
	defer func() { _ = warehouseClient.Close() }()

	dlpClient, err := dlp.NewClient(ctx)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize de-identification client")
	}
	defer func() { _ = dlpClient.Close() }()

	redactor, err := redact.NewRedactor(gCfg.WarehouseConfig.Project, gCfg.RedactionConfig, dlpClient, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize redactor")
	}

	recorder := metrics.New()
	pipeline, err := orchestrator.NewPipelineOrchestrator(gCfg, warehouseClient, redactor, recorder, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize pipeline orchestrator")
	}

	summary, err := pipeline.ExecutePipeline(ctx)
	if err != nil {
		if summary != nil && summary.Status == models.RunStatusInterrupted {
			zLogger.Info().Str("run_id", summary.RunID).Msg("Pipeline run interrupted")
			return
		}
		zLogger.Fatal().Err(err).Msg("Pipeline run failed")
	}

	zLogger.Info().
		Str("run_id", summary.RunID).
		Str("status", string(summary.Status)).
		Int("rows_extracted", summary.RowsExtracted).
		Int("chunks_loaded", summary.ChunksLoaded).
		Int("rows_loaded", summary.RowsLoaded).
		Dur("duration", summary.Duration).
		Msg("tablewash finished")
}

// applyFlagOverrides lets command-line flags take precedence over config
// file values.
func applyFlagOverrides(cfg *config.GlobalConfig, flags AppFlags) {
	if flags.Project != "" {
		cfg.WarehouseConfig.Project = flags.Project
	}
	if flags.Dataset != "" {
		cfg.WarehouseConfig.Dataset = flags.Dataset
	}
	if flags.InputTable != "" {
		cfg.WarehouseConfig.InputTable = flags.InputTable
	}
	if flags.OutputTable != "" {
		cfg.WarehouseConfig.OutputTable = flags.OutputTable
	}
	if flags.ChunkSizeSet {
		cfg.WarehouseConfig.ChunkSize = flags.ChunkSize
	}
	if flags.CleanupStaging {
		cfg.WarehouseConfig.CleanupStaging = true
	}
}
