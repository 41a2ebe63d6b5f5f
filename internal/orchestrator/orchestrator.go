package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/tablewash/tablewash/internal/common/chunker"
	"github.com/tablewash/tablewash/internal/common/errorwrapper"
	"github.com/tablewash/tablewash/internal/config"
	"github.com/tablewash/tablewash/internal/metrics"
	"github.com/tablewash/tablewash/internal/models"
)

// Pipeline step names used in errors and failure metrics.
const (
	StepExtract = "extract"
	StepRead    = "read"
	StepRedact  = "redact"
	StepLoad    = "load"
	StepCleanup = "cleanup"
)

// Warehouse is the warehouse capability the pipeline consumes.
type Warehouse interface {
	ExtractToStaging(ctx context.Context, source, staging models.TableRef) error
	ReadTable(ctx context.Context, ref models.TableRef) (*models.Table, error)
	LoadChunk(ctx context.Context, ref models.TableRef, chunk *models.Table, truncate bool) error
	DeleteTable(ctx context.Context, ref models.TableRef) error
}

// Redactor is the de-identification capability the pipeline consumes.
type Redactor interface {
	Deidentify(ctx context.Context, table *models.Table) (*models.Table, error)
}

// PipelineOrchestrator moves data source table -> redaction service ->
// destination table. Linear pipeline, no retry, no partial-completion
// recovery: a failure aborts the run and already-loaded chunks stay.
type PipelineOrchestrator struct {
	config    *config.GlobalConfig
	warehouse Warehouse
	redactor  Redactor
	chunker   *chunker.Chunker
	metrics   *metrics.Recorder
	logger    zerolog.Logger
}

// NewPipelineOrchestrator creates a new orchestrator. All collaborators
// are explicit parameters; nothing ambient is consulted.
func NewPipelineOrchestrator(
	cfg *config.GlobalConfig,
	warehouse Warehouse,
	redactor Redactor,
	recorder *metrics.Recorder,
	logger zerolog.Logger,
) (*PipelineOrchestrator, error) {
	if warehouse == nil {
		return nil, errorwrapper.NewError("warehouse client is required")
	}
	if redactor == nil {
		return nil, errorwrapper.NewError("redactor is required")
	}
	if recorder == nil {
		recorder = metrics.New()
	}

	rowChunker, err := chunker.NewChunker(chunker.ChunkerConfig{
		ChunkSize: cfg.WarehouseConfig.ChunkSize,
	}, logger)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "invalid chunk configuration")
	}

	return &PipelineOrchestrator{
		config:    cfg,
		warehouse: warehouse,
		redactor:  redactor,
		chunker:   rowChunker,
		metrics:   recorder,
		logger:    logger.With().Str("component", "PipelineOrchestrator").Logger(),
	}, nil
}

// tableRefs resolves the source, staging, and destination references from
// the warehouse config.
func (po *PipelineOrchestrator) tableRefs() (source, staging, destination models.TableRef) {
	wc := po.config.WarehouseConfig
	source = models.TableRef{Project: wc.Project, Dataset: wc.Dataset, Table: wc.InputTable}
	staging = models.TableRef{Project: wc.Project, Dataset: wc.Dataset, Table: wc.StagingTableName()}
	destination = models.TableRef{Project: wc.Project, Dataset: wc.Dataset, Table: wc.OutputTable}
	return source, staging, destination
}

// ExecutePipeline runs the full extract -> redact -> chunked-load workflow
// and blocks until it completes or fails.
func (po *PipelineOrchestrator) ExecutePipeline(ctx context.Context) (*models.RunSummary, error) {
	runID := time.Now().Format("20060102-150405")
	source, staging, destination := po.tableRefs()

	summary := models.GetDefaultRunSummary(runID)
	summary.SourceTable = source.String()
	summary.TargetTable = destination.String()
	startTime := time.Now()

	po.logger.Info().
		Str("run_id", runID).
		Str("source", source.String()).
		Str("destination", destination.String()).
		Int("chunk_size", po.config.WarehouseConfig.ChunkSize).
		Msg("Starting redaction pipeline")

	// Extract: materialize SELECT * into the staging table.
	if err := po.warehouse.ExtractToStaging(ctx, source, staging); err != nil {
		return po.fail(summary, startTime, StepExtract, err)
	}

	// Read back: stream staging rows into the in-memory payload.
	payload, err := po.warehouse.ReadTable(ctx, staging)
	if err != nil {
		return po.fail(summary, startTime, StepRead, err)
	}
	summary.RowsExtracted = payload.NumRows()
	po.metrics.RowsExtracted.Add(float64(payload.NumRows()))

	if payload.IsEmpty() {
		po.logger.Warn().Str("source", source.String()).Msg("Source table has no rows, nothing to redact")
		summary.Status = models.RunStatusNoRows
		summary.Duration = time.Since(startTime)
		return summary, nil
	}

	// Redact: one synchronous call carrying the entire payload.
	po.metrics.RedactRequests.Inc()
	redacted, err := po.redactor.Deidentify(ctx, payload)
	if err != nil {
		return po.fail(summary, startTime, StepRedact, err)
	}

	// Reassemble and load: truncate the destination with the first chunk,
	// append every chunk after it, strictly sequentially.
	results, err := po.chunker.ProcessSequentially(ctx, redacted.Rows, func(chunkCtx context.Context, rows [][]string, chunkIndex int) error {
		chunk := &models.Table{Headers: redacted.Headers, Rows: rows}
		truncate := chunkIndex == 0
		if loadErr := po.warehouse.LoadChunk(chunkCtx, destination, chunk, truncate); loadErr != nil {
			return loadErr
		}
		po.metrics.ChunksLoaded.Inc()
		po.metrics.RowsLoaded.Add(float64(len(rows)))
		return nil
	})
	for _, result := range results {
		if result.Success {
			summary.ChunksLoaded++
			summary.RowsLoaded += result.Rows
		}
	}
	if err != nil {
		return po.fail(summary, startTime, StepLoad, err)
	}

	if po.config.WarehouseConfig.CleanupStaging {
		if err := po.warehouse.DeleteTable(ctx, staging); err != nil {
			return po.fail(summary, startTime, StepCleanup, err)
		}
	}

	summary.Status = models.RunStatusCompleted
	summary.Duration = time.Since(startTime)

	po.logger.Info().
		Str("run_id", runID).
		Int("rows_extracted", summary.RowsExtracted).
		Int("chunks_loaded", summary.ChunksLoaded).
		Int("rows_loaded", summary.RowsLoaded).
		Dur("duration", summary.Duration).
		Msg("Redaction pipeline completed")

	return summary, nil
}

// fail finalizes the summary for a failed or interrupted run and wraps the
// error with its pipeline step.
func (po *PipelineOrchestrator) fail(summary *models.RunSummary, startTime time.Time, step string, err error) (*models.RunSummary, error) {
	summary.Duration = time.Since(startTime)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		summary.Status = models.RunStatusInterrupted
	} else {
		summary.Status = models.RunStatusFailed
	}
	summary.ErrorMessages = append(summary.ErrorMessages, err.Error())

	po.metrics.IncRunFailure(step)
	po.logger.Error().Err(err).Str("step", step).Msg("Redaction pipeline aborted")

	return summary, errorwrapper.NewPipelineStepError(step, "pipeline aborted", err)
}
