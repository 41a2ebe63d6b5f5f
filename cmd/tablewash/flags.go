package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// AppFlags holds the parsed command-line surface.
type AppFlags struct {
	Project        string
	Dataset        string
	InputTable     string
	OutputTable    string
	ChunkSize      int
	ChunkSizeSet   bool
	ConfigFile     string
	CleanupStaging bool
}

// ParseFlags parses the command-line flags. The five table flags are
// required unless a config file supplies them instead.
func ParseFlags() AppFlags {
	project := flag.String("project", "", "Cloud project that owns the tables and the redaction service parent.")
	dataset := flag.String("dataset", "", "Dataset containing the input and output tables.")
	inputTable := flag.String("input_table", "", "Source table to de-identify.")
	outputTable := flag.String("output_table", "", "Destination table for redacted rows.")
	chunkSize := flag.String("chunksize", "", "Number of redacted rows per load job.")

	configFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	cleanupStaging := flag.Bool("cleanup-staging", false, "Delete the staging table after a successful run.")

	flag.Parse()

	flags := AppFlags{
		Project:        *project,
		Dataset:        *dataset,
		InputTable:     *inputTable,
		OutputTable:    *outputTable,
		CleanupStaging: *cleanupStaging,
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *chunkSize != "" {
		parsed, err := strconv.Atoi(*chunkSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] --chunksize must be an integer, got %q\n", *chunkSize)
			os.Exit(1)
		}
		flags.ChunkSize = parsed
		flags.ChunkSizeSet = true
	}

	// Without a config file the table flags are the only source of the
	// run parameters, so all of them are required.
	if flags.ConfigFile == "" {
		missing := []string{}
		if flags.Project == "" {
			missing = append(missing, "--project")
		}
		if flags.Dataset == "" {
			missing = append(missing, "--dataset")
		}
		if flags.InputTable == "" {
			missing = append(missing, "--input_table")
		}
		if flags.OutputTable == "" {
			missing = append(missing, "--output_table")
		}
		if !flags.ChunkSizeSet {
			missing = append(missing, "--chunksize")
		}
		if len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "[FATAL] required flags not set: %v\n", missing)
			os.Exit(1)
		}
	}

	return flags
}
