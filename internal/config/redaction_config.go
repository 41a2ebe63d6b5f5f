package config

// RedactionConfig controls what the redaction service looks for and how
// detected spans are replaced.
type RedactionConfig struct {
	// InfoTypes are the detector categories the service inspects for.
	InfoTypes []string `json:"info_types,omitempty" yaml:"info_types,omitempty" validate:"omitempty,dive,required"`

	// FieldsToRedact are the column names the transformation applies to.
	// They are deliberately not checked against the source table's headers;
	// the service ignores fields that do not exist in the payload.
	FieldsToRedact []string `json:"fields_to_redact,omitempty" yaml:"fields_to_redact,omitempty" validate:"omitempty,dive,required"`

	// Placeholder is the literal that replaces every detected span.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Location is the DLP location component of the request parent.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// DeidentifyTemplate, when set, names a stored de-identification
	// template and the inline transformation config is not sent. Exactly
	// one of the two modes is used per request.
	DeidentifyTemplate string `json:"deidentify_template,omitempty" yaml:"deidentify_template,omitempty"`
}

// NewDefaultRedactionConfig creates default redaction configuration with
// the full built-in detector category list and the stock field selection.
func NewDefaultRedactionConfig() RedactionConfig {
	return RedactionConfig{
		InfoTypes:      DefaultInfoTypes(),
		FieldsToRedact: DefaultFieldsToRedact(),
		Placeholder:    DefaultPlaceholder,
		Location:       DefaultDLPLocation,
	}
}
