package redact

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/dlp/apiv2/dlppb"
	"github.com/googleapis/gax-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewash/tablewash/internal/config"
	"github.com/tablewash/tablewash/internal/models"
)

// fakeDLP captures the request and returns a canned response or error.
type fakeDLP struct {
	lastRequest *dlppb.DeidentifyContentRequest
	response    *dlppb.DeidentifyContentResponse
	err         error
}

func (f *fakeDLP) DeidentifyContent(ctx context.Context, req *dlppb.DeidentifyContentRequest, opts ...gax.CallOption) (*dlppb.DeidentifyContentResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func echoResponse(table *models.Table) *dlppb.DeidentifyContentResponse {
	return &dlppb.DeidentifyContentResponse{
		Item: &dlppb.ContentItem{
			DataItem: &dlppb.ContentItem_Table{Table: tableToProto(table)},
		},
	}
}

func testRedactionConfig() config.RedactionConfig {
	return config.RedactionConfig{
		InfoTypes:      []string{"PERSON_NAME", "EMAIL_ADDRESS"},
		FieldsToRedact: []string{"name"},
		Placeholder:    "[REDACTED]",
		Location:       "global",
	}
}

func TestNewRedactor_Validation(t *testing.T) {
	_, err := NewRedactor("", testRedactionConfig(), &fakeDLP{}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewRedactor("my-project", testRedactionConfig(), nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewRedactor_Defaults(t *testing.T) {
	r, err := NewRedactor("my-project", config.RedactionConfig{}, &fakeDLP{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPlaceholder, r.config.Placeholder)
	assert.Equal(t, "projects/my-project/locations/global", r.parent())
}

func TestDeidentify_RequestConstruction(t *testing.T) {
	payload := &models.Table{
		Headers: []string{"name", "email"},
		Rows:    [][]string{{"Ann", "a@x.com"}},
	}
	fake := &fakeDLP{response: echoResponse(payload)}

	r, err := NewRedactor("my-project", testRedactionConfig(), fake, zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Deidentify(context.Background(), payload)
	require.NoError(t, err)

	req := fake.lastRequest
	require.NotNil(t, req)
	assert.Equal(t, "projects/my-project/locations/global", req.GetParent())

	// Inspect config carries the detector categories in order.
	infoTypes := req.GetInspectConfig().GetInfoTypes()
	require.Len(t, infoTypes, 2)
	assert.Equal(t, "PERSON_NAME", infoTypes[0].GetName())
	assert.Equal(t, "EMAIL_ADDRESS", infoTypes[1].GetName())

	// Inline mode: transformation config present, no template name.
	assert.Empty(t, req.GetDeidentifyTemplateName())
	fieldTransforms := req.GetDeidentifyConfig().GetRecordTransformations().GetFieldTransformations()
	require.Len(t, fieldTransforms, 1)
	require.Len(t, fieldTransforms[0].GetFields(), 1)
	assert.Equal(t, "name", fieldTransforms[0].GetFields()[0].GetName())

	replace := fieldTransforms[0].GetInfoTypeTransformations().GetTransformations()[0].
		GetPrimitiveTransformation().GetReplaceConfig()
	assert.Equal(t, "[REDACTED]", replace.GetNewValue().GetStringValue())

	// Payload conversion is positional.
	table := req.GetItem().GetTable()
	require.Len(t, table.GetHeaders(), 2)
	assert.Equal(t, "name", table.GetHeaders()[0].GetName())
	require.Len(t, table.GetRows(), 1)
	assert.Equal(t, "Ann", table.GetRows()[0].GetValues()[0].GetStringValue())
}

func TestDeidentify_TemplateModeExcludesInlineConfig(t *testing.T) {
	cfg := testRedactionConfig()
	cfg.DeidentifyTemplate = "projects/my-project/locations/global/deidentifyTemplates/base"

	payload := models.NewTable([]string{"name"})
	fake := &fakeDLP{response: echoResponse(payload)}

	r, err := NewRedactor("my-project", cfg, fake, zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Deidentify(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, cfg.DeidentifyTemplate, fake.lastRequest.GetDeidentifyTemplateName())
	assert.Nil(t, fake.lastRequest.GetDeidentifyConfig())
}

func TestDeidentify_PermutedHeaderOrderPreserved(t *testing.T) {
	// Response headers deliberately ["b","a"]; the converted payload must
	// keep that exact order, not resort it.
	response := &models.Table{
		Headers: []string{"b", "a"},
		Rows:    [][]string{{"2", "1"}, {"4", "3"}},
	}
	fake := &fakeDLP{response: echoResponse(response)}

	r, err := NewRedactor("my-project", testRedactionConfig(), fake, zerolog.Nop())
	require.NoError(t, err)

	got, err := r.Deidentify(context.Background(), models.NewTable([]string{"b", "a"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, got.Headers)
	assert.Equal(t, [][]string{{"2", "1"}, {"4", "3"}}, got.Rows)
}

func TestDeidentify_ServiceError(t *testing.T) {
	boom := errors.New("request too large")
	fake := &fakeDLP{err: boom}

	r, err := NewRedactor("my-project", testRedactionConfig(), fake, zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Deidentify(context.Background(), models.NewTable([]string{"name"}))
	require.ErrorIs(t, err, boom)
}

func TestDeidentify_MissingTableInResponse(t *testing.T) {
	fake := &fakeDLP{response: &dlppb.DeidentifyContentResponse{
		Item: &dlppb.ContentItem{},
	}}

	r, err := NewRedactor("my-project", testRedactionConfig(), fake, zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Deidentify(context.Background(), models.NewTable([]string{"name"}))
	assert.Error(t, err)
}
