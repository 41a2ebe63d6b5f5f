package config

// WarehouseConfig identifies the source and destination tables and controls
// the chunked write-back.
type WarehouseConfig struct {
	Project     string `json:"project,omitempty" yaml:"project,omitempty" validate:"required"`
	Dataset     string `json:"dataset,omitempty" yaml:"dataset,omitempty" validate:"required,tablename"`
	InputTable  string `json:"input_table,omitempty" yaml:"input_table,omitempty" validate:"required,tablename"`
	OutputTable string `json:"output_table,omitempty" yaml:"output_table,omitempty" validate:"required,tablename"`

	// StagingTable is where the large-result extract query materializes.
	// Defaults to InputTable + "_staging" when empty.
	StagingTable string `json:"staging_table,omitempty" yaml:"staging_table,omitempty" validate:"omitempty,tablename"`

	// ChunkSize is the number of redacted rows per load job.
	ChunkSize int `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty" validate:"required,min=1"`

	// CleanupStaging deletes the staging table after a successful run.
	CleanupStaging bool `json:"cleanup_staging,omitempty" yaml:"cleanup_staging,omitempty"`
}

// NewDefaultWarehouseConfig creates default warehouse configuration.
// Table identifiers have no sensible defaults and must come from flags or
// the config file.
func NewDefaultWarehouseConfig() WarehouseConfig {
	return WarehouseConfig{
		ChunkSize: DefaultChunkSize,
	}
}

// StagingTableName returns the configured staging table, falling back to
// the input table name with the staging suffix.
func (wc WarehouseConfig) StagingTableName() string {
	if wc.StagingTable != "" {
		return wc.StagingTable
	}
	return wc.InputTable + DefaultStagingTableSuffix
}
