package chunker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tablewash/tablewash/internal/common/errorwrapper"
)

// ChunkerConfig holds configuration for chunked row processing
type ChunkerConfig struct {
	ChunkSize    int           // Rows per chunk
	ChunkTimeout time.Duration // Timeout per chunk (default: 30 minutes)
}

// DefaultChunkerConfig returns default configuration
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		ChunkSize:    1000,
		ChunkTimeout: 30 * time.Minute,
	}
}

// ChunkResult holds the result of processing one chunk
type ChunkResult struct {
	ChunkIndex int
	Success    bool
	Error      error
	Rows       int
	Duration   time.Duration
}

// Chunker splits a row set into fixed-size chunks and processes them
// strictly sequentially.
type Chunker struct {
	config ChunkerConfig
	logger zerolog.Logger
}

// NewChunker creates a new chunker
func NewChunker(config ChunkerConfig, logger zerolog.Logger) (*Chunker, error) {
	if config.ChunkSize <= 0 {
		return nil, errorwrapper.NewValidationError("chunk_size", config.ChunkSize, "chunk size must be positive")
	}
	if config.ChunkTimeout <= 0 {
		config.ChunkTimeout = DefaultChunkerConfig().ChunkTimeout
	}
	return &Chunker{
		config: config,
		logger: logger.With().Str("component", "Chunker").Logger(),
	}, nil
}

// ProcessFunc defines the function signature for processing a chunk
type ProcessFunc func(ctx context.Context, chunk [][]string, chunkIndex int) error

// NumChunks returns ceil(total / chunkSize). Zero rows means zero chunks;
// an exact multiple never produces a trailing empty chunk.
func (c *Chunker) NumChunks(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + c.config.ChunkSize - 1) / c.config.ChunkSize
}

// Split splits rows into contiguous chunks, preserving order.
func (c *Chunker) Split(rows [][]string) [][][]string {
	numChunks := c.NumChunks(len(rows))
	if numChunks == 0 {
		return nil
	}

	chunks := make([][][]string, 0, numChunks)
	for i := 0; i < len(rows); i += c.config.ChunkSize {
		end := i + c.config.ChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[i:end])
	}

	return chunks
}

// ProcessSequentially splits rows into chunks and runs processFunc on each
// one in order. Processing stops at the first failing chunk; already
// processed chunks are not undone.
func (c *Chunker) ProcessSequentially(
	ctx context.Context,
	rows [][]string,
	processFunc ProcessFunc,
) ([]ChunkResult, error) {
	chunks := c.Split(rows)
	if len(chunks) == 0 {
		c.logger.Info().Msg("No rows to process, skipping chunk loop")
		return nil, nil
	}

	c.logger.Info().
		Int("total_rows", len(rows)).
		Int("chunk_count", len(chunks)).
		Int("chunk_size", c.config.ChunkSize).
		Msg("Starting sequential chunk processing")

	results := make([]ChunkResult, 0, len(chunks))

	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			c.logger.Info().
				Int("completed_chunks", i).
				Int("total_chunks", len(chunks)).
				Msg("Chunk processing interrupted by context cancellation")
			return results, ctx.Err()
		default:
		}

		chunkCtx, cancel := context.WithTimeout(ctx, c.config.ChunkTimeout)

		start := time.Now()
		err := processFunc(chunkCtx, chunk, i)
		duration := time.Since(start)
		cancel()

		result := ChunkResult{
			ChunkIndex: i,
			Success:    err == nil,
			Error:      err,
			Rows:       len(chunk),
			Duration:   duration,
		}
		results = append(results, result)

		if err != nil {
			c.logger.Error().
				Err(err).
				Int("chunk_index", i).
				Dur("duration", duration).
				Msg("Chunk processing failed, aborting remaining chunks")
			return results, err
		}

		c.logger.Debug().
			Int("chunk_index", i).
			Int("rows", len(chunk)).
			Dur("duration", duration).
			Int("progress", i+1).
			Int("total", len(chunks)).
			Msg("Chunk processed")
	}

	c.logger.Info().
		Int("chunk_count", len(chunks)).
		Msg("All chunks processed")

	return results, nil
}
