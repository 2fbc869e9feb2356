// Package wqclean turns water-quality result downloads into
// analysis-ready tables. Characteristic names are harmonized against a
// caller-supplied crosswalk, semantically missing results are flagged,
// and duplicate records are identified or removed under a configurable
// column key.
//
// The package is the public surface of the module: it re-exports the
// pipeline types and wires them to the CSV and Excel importers and the
// CSV exporter. Datasets, crosswalks and schemas live in
// wqclean/pkg/contracts/domain.
package wqclean

import (
	"context"
	"log/slog"

	"wqclean/internal/cleaning"
	"wqclean/internal/config"
	"wqclean/internal/exporter"
	"wqclean/internal/importer"
	"wqclean/pkg/contracts/domain"
)

// Cleaner applies the harmonization and cleaning pipeline to
// water-quality result datasets. A Cleaner is safe for concurrent use;
// every transformation works on a copy of its input.
type Cleaner = cleaning.Cleaner

// Options holds configuration for a Cleaner. The zero value is not a
// useful configuration; start from DefaultOptions.
type Options = cleaning.Options

// CrosswalkFanoutError reports that harmonization multiplied records
// because the crosswalk maps at least one characteristic name to
// several parameters.
type CrosswalkFanoutError = cleaning.CrosswalkFanoutError

// SchemaError reports columns that an operation needs but the dataset
// does not carry.
type SchemaError = cleaning.SchemaError

// Config represents the complete application configuration.
type Config = config.Config

// LoggingConfig contains logging-related configuration.
type LoggingConfig = config.LoggingConfig

// CleaningConfig controls the behavior of the cleaning pipeline.
type CleaningConfig = config.CleaningConfig

// SchemaConfig names the dataset columns the pipeline reads and writes.
type SchemaConfig = config.SchemaConfig

// CSVWriter provides CSV export functionality.
type CSVWriter = exporter.CSVWriter

// WriteOptions configures CSV writing behavior.
type WriteOptions = exporter.WriteOptions

// StreamWriter provides streaming CSV writing for large datasets.
type StreamWriter = exporter.StreamWriter

// NewCleaner creates a cleaner with the given options. A nil logger
// falls back to slog.Default().
func NewCleaner(logger *slog.Logger, opts Options) *Cleaner {
	return cleaning.NewCleaner(logger, opts)
}

// DefaultOptions returns options matching a standard Water Quality
// Portal download with exact-duplicate removal enabled.
func DefaultOptions() Options {
	return cleaning.DefaultOptions()
}

// OptionsFromConfig builds cleaner options from loaded configuration.
func OptionsFromConfig(cfg *Config) Options {
	return cleaning.OptionsFromConfig(cfg)
}

// Clean runs the standard pipeline over a dataset using default
// options: required-column check, harmonization against the crosswalk,
// missing-result flagging, crosswalk fan-out guard, then
// exact-duplicate removal. Use NewCleaner for custom options or an
// injected logger.
func Clean(ctx context.Context, ds domain.Dataset, cw domain.Crosswalk) (domain.Dataset, error) {
	return cleaning.NewCleaner(nil, cleaning.DefaultOptions()).Clean(ctx, ds, cw)
}

// IsCrosswalkFanout checks if an error is a CrosswalkFanoutError
func IsCrosswalkFanout(err error) bool {
	return cleaning.IsCrosswalkFanout(err)
}

// IsSchema checks if an error is a SchemaError
func IsSchema(err error) bool {
	return cleaning.IsSchema(err)
}

// LoadConfig loads configuration from environment variables and an
// optional YAML file found in the standard locations.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// LoadConfigFrom loads configuration using the given YAML file. An
// empty or nonexistent path means environment variables and defaults
// only.
func LoadConfigFrom(path string) (*Config, error) {
	return config.LoadFrom(path)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// ReadDatasetCSV loads a portal result download from a CSV file.
func ReadDatasetCSV(path string) (domain.Dataset, error) {
	return importer.ReadDatasetCSV(path)
}

// ReadCrosswalkCSV loads a characteristic-name crosswalk from a CSV
// file. Empty column names fall back to the portal defaults.
func ReadCrosswalkCSV(path, nameColumn, paramColumn string) (domain.Crosswalk, error) {
	return importer.ReadCrosswalkCSV(path, nameColumn, paramColumn)
}

// ReadDatasetExcel loads a portal result download from an Excel
// workbook. An empty sheet name selects the first sheet whose header
// row carries every column in requiredColumns.
func ReadDatasetExcel(path, sheet string, requiredColumns ...string) (domain.Dataset, error) {
	return importer.ReadDatasetExcel(path, sheet, requiredColumns...)
}

// ReadCrosswalkExcel loads a characteristic-name crosswalk from an
// Excel workbook. Empty column names fall back to the portal defaults;
// an empty sheet name selects the sheet carrying both columns.
func ReadCrosswalkExcel(path, sheet, nameColumn, paramColumn string) (domain.Crosswalk, error) {
	return importer.ReadCrosswalkExcel(path, sheet, nameColumn, paramColumn)
}

// NewCSVWriter creates a new CSV writer instance. A nil logger falls
// back to slog.Default().
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	return exporter.NewCSVWriter(logger)
}

// WriteDatasetCSV writes a dataset to a CSV file: header row first, one
// record per row, and a UTF-8 BOM so Excel opens the file cleanly.
func WriteDatasetCSV(path string, ds domain.Dataset) error {
	return exporter.NewCSVWriter(nil).WriteDataset(path, ds)
}
