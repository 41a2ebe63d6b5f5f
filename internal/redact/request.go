package redact

import (
	"cloud.google.com/go/dlp/apiv2/dlppb"
	"github.com/tablewash/tablewash/internal/common/errorwrapper"
	"github.com/tablewash/tablewash/internal/models"
)

// buildRequest assembles the de-identification request. Exactly one
// configuration mode is used: a stored template name when configured,
// otherwise the inline replace-with-placeholder transformation.
func (r *Redactor) buildRequest(table *models.Table) *dlppb.DeidentifyContentRequest {
	req := &dlppb.DeidentifyContentRequest{
		Parent:        r.parent(),
		InspectConfig: r.buildInspectConfig(),
		Item: &dlppb.ContentItem{
			DataItem: &dlppb.ContentItem_Table{
				Table: tableToProto(table),
			},
		},
	}

	if r.config.DeidentifyTemplate != "" {
		req.DeidentifyTemplateName = r.config.DeidentifyTemplate
	} else {
		req.DeidentifyConfig = r.buildDeidentifyConfig()
	}

	return req
}

// buildInspectConfig lists the detector categories to search for.
func (r *Redactor) buildInspectConfig() *dlppb.InspectConfig {
	infoTypes := make([]*dlppb.InfoType, 0, len(r.config.InfoTypes))
	for _, name := range r.config.InfoTypes {
		infoTypes = append(infoTypes, &dlppb.InfoType{Name: name})
	}
	return &dlppb.InspectConfig{InfoTypes: infoTypes}
}

// buildDeidentifyConfig builds the inline record transformation: any
// detected span within the selected fields is replaced with the fixed
// placeholder literal.
func (r *Redactor) buildDeidentifyConfig() *dlppb.DeidentifyConfig {
	fields := make([]*dlppb.FieldId, 0, len(r.config.FieldsToRedact))
	for _, name := range r.config.FieldsToRedact {
		fields = append(fields, &dlppb.FieldId{Name: name})
	}

	return &dlppb.DeidentifyConfig{
		Transformation: &dlppb.DeidentifyConfig_RecordTransformations{
			RecordTransformations: &dlppb.RecordTransformations{
				FieldTransformations: []*dlppb.FieldTransformation{
					{
						Fields: fields,
						Transformation: &dlppb.FieldTransformation_InfoTypeTransformations{
							InfoTypeTransformations: &dlppb.InfoTypeTransformations{
								Transformations: []*dlppb.InfoTypeTransformations_InfoTypeTransformation{
									{
										PrimitiveTransformation: &dlppb.PrimitiveTransformation{
											Transformation: &dlppb.PrimitiveTransformation_ReplaceConfig{
												ReplaceConfig: &dlppb.ReplaceValueConfig{
													NewValue: &dlppb.Value{
														Type: &dlppb.Value_StringValue{
															StringValue: r.config.Placeholder,
														},
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// tableToProto converts the in-memory payload to the wire table. Header
// and cell order is preserved positionally.
func tableToProto(table *models.Table) *dlppb.Table {
	headers := make([]*dlppb.FieldId, 0, len(table.Headers))
	for _, name := range table.Headers {
		headers = append(headers, &dlppb.FieldId{Name: name})
	}

	rows := make([]*dlppb.Table_Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		values := make([]*dlppb.Value, 0, len(row))
		for _, cell := range row {
			values = append(values, &dlppb.Value{
				Type: &dlppb.Value_StringValue{StringValue: cell},
			})
		}
		rows = append(rows, &dlppb.Table_Row{Values: values})
	}

	return &dlppb.Table{Headers: headers, Rows: rows}
}

// tableFromContent converts the response's table back into the in-memory
// payload, again positionally. Structured value metadata beyond the
// string representation is discarded.
func tableFromContent(item *dlppb.ContentItem) (*models.Table, error) {
	proto := item.GetTable()
	if proto == nil {
		return nil, errorwrapper.NewError("de-identification response did not contain a table")
	}

	headers := make([]string, 0, len(proto.GetHeaders()))
	for _, header := range proto.GetHeaders() {
		headers = append(headers, header.GetName())
	}

	table := models.NewTable(headers)
	for _, row := range proto.GetRows() {
		cells := make([]string, 0, len(row.GetValues()))
		for _, value := range row.GetValues() {
			cells = append(cells, value.GetStringValue())
		}
		table.AppendRow(cells)
	}

	return table, nil
}
