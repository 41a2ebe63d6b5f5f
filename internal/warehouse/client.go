package warehouse

import (
	"bytes"
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog"
	"github.com/tablewash/tablewash/internal/common/errorwrapper"
	"github.com/tablewash/tablewash/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client wraps the BigQuery client with the operations the redaction
// pipeline needs: large-result extraction, row readback, and chunked
// load jobs.
type Client struct {
	bq     *bigquery.Client
	logger zerolog.Logger
}

// New creates a warehouse client for the given project. The project is an
// explicit parameter; no ambient project context is consulted.
func New(ctx context.Context, project string, logger zerolog.Logger, opts ...option.ClientOption) (*Client, error) {
	if project == "" {
		return nil, errorwrapper.NewValidationError("project", project, "project is required")
	}

	bq, err := bigquery.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create BigQuery client")
	}

	return &Client{
		bq:     bq,
		logger: logger.With().Str("component", "Warehouse").Logger(),
	}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.bq.Close()
}

func (c *Client) table(ref models.TableRef) *bigquery.Table {
	return c.bq.DatasetInProject(ref.Project, ref.Dataset).Table(ref.Table)
}

// ExtractToStaging runs `SELECT *` over the source table and materializes
// the full result into the staging table in large-result mode. Blocks
// until the query job completes.
func (c *Client) ExtractToStaging(ctx context.Context, source, staging models.TableRef) error {
	query := c.bq.Query(fmt.Sprintf("SELECT * FROM `%s`", source.String()))
	query.Dst = c.table(staging)
	query.AllowLargeResults = true
	query.WriteDisposition = bigquery.WriteTruncate

	c.logger.Info().
		Str("source", source.String()).
		Str("staging", staging.String()).
		Msg("Starting extract query job")

	job, err := query.Run(ctx)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to start extract query job")
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return errorwrapper.WrapError(err, "extract query job did not complete")
	}
	if err := status.Err(); err != nil {
		return errorwrapper.WrapError(err, "extract query job failed")
	}

	c.logger.Info().Str("staging", staging.String()).Msg("Extract query job completed")
	return nil
}

// ReadTable streams all rows of the given table into an in-memory tabular
// payload. Headers follow the table's schema order; every cell is coerced
// to its string representation.
func (c *Client) ReadTable(ctx context.Context, ref models.TableRef) (*models.Table, error) {
	md, err := c.table(ref).Metadata(ctx)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read table metadata")
	}

	headers := make([]string, 0, len(md.Schema))
	for _, field := range md.Schema {
		headers = append(headers, field.Name)
	}
	payload := models.NewTable(headers)

	it := c.table(ref).Read(ctx)
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to iterate table rows")
		}

		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = coerceCell(value)
		}
		payload.AppendRow(cells)
	}

	c.logger.Info().
		Str("table", ref.String()).
		Int("rows", payload.NumRows()).
		Int("columns", payload.NumColumns()).
		Msg("Table read into payload")

	return payload, nil
}

// LoadChunk appends one chunk of redacted rows to the destination table
// via a CSV load job and waits for it to complete. The truncate flag maps
// to the job's write disposition: truncate on the first chunk of a run,
// append on every later one.
func (c *Client) LoadChunk(ctx context.Context, ref models.TableRef, chunk *models.Table, truncate bool) error {
	data, err := encodeChunkCSV(chunk)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to encode chunk as CSV")
	}

	source := bigquery.NewReaderSource(bytes.NewReader(data))
	source.SourceFormat = bigquery.CSV
	source.Schema = chunkSchema(chunk.Headers)
	source.AllowQuotedNewlines = true

	loader := c.table(ref).LoaderFrom(source)
	if truncate {
		loader.WriteDisposition = bigquery.WriteTruncate
	} else {
		loader.WriteDisposition = bigquery.WriteAppend
	}

	job, err := loader.Run(ctx)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to start chunk load job")
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return errorwrapper.WrapError(err, "chunk load job did not complete")
	}
	if err := status.Err(); err != nil {
		return errorwrapper.WrapError(err, "chunk load job failed")
	}

	c.logger.Debug().
		Str("table", ref.String()).
		Int("rows", chunk.NumRows()).
		Bool("truncate", truncate).
		Msg("Chunk load job completed")

	return nil
}

// DeleteTable removes a table. Used for optional staging cleanup after a
// successful run.
func (c *Client) DeleteTable(ctx context.Context, ref models.TableRef) error {
	if err := c.table(ref).Delete(ctx); err != nil {
		return errorwrapper.WrapError(err, "failed to delete table")
	}
	c.logger.Info().Str("table", ref.String()).Msg("Table deleted")
	return nil
}
