// Package config provides centralized configuration management for the
// water-quality cleaning pipeline. It handles loading configuration from
// multiple sources, validation, and provides a type-safe API for the
// rest of the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of
// precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern WQ_* for namespacing:
//
//	WQ_LOGGING_LEVEL=debug
//	WQ_LOGGING_OUTPUT=both
//	WQ_CLEANING_SORT_WORKERS=8
//	WQ_CLEANING_REMOVE_EXACT_DUPLICATES=false
//	WQ_SCHEMA_RESULT_VALUE=ResultMeasureValue
//
// # Validation
//
// All configuration is validated at load time to ensure:
//
//	- Logging level, format and output name known modes
//	- Column names are present and do not collide
//	- Worker counts are within acceptable ranges
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For tests, config.Default() returns a configuration with the standard
// Water Quality Portal column names and no file dependencies.
package config
