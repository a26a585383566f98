package builtin

import (
	"unicode/utf8"

	"seed-manager/core/ingest"
	"seed-manager/core/ingest/csvfile"
	"seed-manager/core/ingest/jsonfile"
	"seed-manager/core/ingest/xlsxfile"

	"go.uber.org/zap"
)

// Config holds configuration for the built-in handlers.
type Config struct {
	// CSVDelimiter is the CSV field separator. Only its first character is used.
	CSVDelimiter string `mapstructure:"csv_delimiter" default:","`
	// CSVSampleSize is how many leading bytes feed CSV encoding detection.
	CSVSampleSize int `mapstructure:"csv_sample_size" default:"10000"`
}

// Comma returns the delimiter rune, or ',' when none is configured.
func (c Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// NewRegistry returns a registry holding the json, csv and xlsx handlers.
func NewRegistry(cfg Config, logger *zap.Logger) *ingest.Registry {
	reg := ingest.NewRegistry()
	reg.Register(ingest.FormatJSON, jsonfile.NewHandler(jsonfile.Options{Logger: logger}))
	reg.Register(ingest.FormatCSV, csvfile.NewHandler(csvfile.Options{
		Comma:      cfg.Comma(),
		SampleSize: cfg.CSVSampleSize,
		Logger:     logger,
	}))
	reg.Register(ingest.FormatXLSX, xlsxfile.NewHandler(xlsxfile.Options{Logger: logger}))
	return reg
}

// NewLoader returns a loader over NewRegistry.
func NewLoader(cfg Config, logger *zap.Logger) *ingest.Loader {
	return ingest.NewLoader(NewRegistry(cfg, logger))
}
