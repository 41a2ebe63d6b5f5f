package redact

import (
	"context"
	"fmt"

	"cloud.google.com/go/dlp/apiv2/dlppb"
	"github.com/googleapis/gax-go/v2"
	"github.com/rs/zerolog"
	"github.com/tablewash/tablewash/internal/common/errorwrapper"
	"github.com/tablewash/tablewash/internal/config"
	"github.com/tablewash/tablewash/internal/models"
)

// deidentifier is the slice of the DLP API the redactor uses. Satisfied by
// *dlp.Client.
type deidentifier interface {
	DeidentifyContent(ctx context.Context, req *dlppb.DeidentifyContentRequest, opts ...gax.CallOption) (*dlppb.DeidentifyContentResponse, error)
}

// Redactor submits tabular payloads to the de-identification service and
// converts the response back into the pipeline's table representation.
type Redactor struct {
	api     deidentifier
	project string
	config  config.RedactionConfig
	logger  zerolog.Logger
}

// NewRedactor creates a redactor bound to a project and redaction config.
func NewRedactor(project string, cfg config.RedactionConfig, api deidentifier, logger zerolog.Logger) (*Redactor, error) {
	if project == "" {
		return nil, errorwrapper.NewValidationError("project", project, "project is required")
	}
	if api == nil {
		return nil, errorwrapper.NewError("de-identification API client is required")
	}

	if cfg.Placeholder == "" {
		cfg.Placeholder = config.DefaultPlaceholder
	}
	if cfg.Location == "" {
		cfg.Location = config.DefaultDLPLocation
	}

	return &Redactor{
		api:     api,
		project: project,
		config:  cfg,
		logger:  logger.With().Str("component", "Redactor").Logger(),
	}, nil
}

// Deidentify sends the full payload in one synchronous request and returns
// the redacted payload with identical shape and header order. The payload
// is not chunked before submission; the service's request-size limit is
// the effective ceiling.
func (r *Redactor) Deidentify(ctx context.Context, table *models.Table) (*models.Table, error) {
	req := r.buildRequest(table)

	r.logger.Info().
		Int("rows", table.NumRows()).
		Int("columns", table.NumColumns()).
		Int("info_types", len(r.config.InfoTypes)).
		Int("fields", len(r.config.FieldsToRedact)).
		Bool("template_mode", r.config.DeidentifyTemplate != "").
		Msg("Submitting de-identification request")

	resp, err := r.api.DeidentifyContent(ctx, req)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "de-identification request failed")
	}

	redacted, err := tableFromContent(resp.GetItem())
	if err != nil {
		return nil, err
	}

	r.logger.Info().Int("rows", redacted.NumRows()).Msg("De-identification response received")
	return redacted, nil
}

// parent returns the full resource name of the request parent.
func (r *Redactor) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.project, r.config.Location)
}
