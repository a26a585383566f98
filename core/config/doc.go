// Package config provides configuration management for the Seed Manager.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the bucket holding import sources
//   - Log: Logging level and format
//   - Ingest: CSV delimiter and encoding detection sample size
//   - Seed: insert batch size and unknown column policy
//
// Environment variables map onto nested keys: INGEST_CSV_DELIMITER sets
// ingest.csv_delimiter.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	loader := builtin.NewLoader(cfg.Ingest, log)
package config
