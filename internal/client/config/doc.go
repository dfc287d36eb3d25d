// Package config loads runtime configuration for the heartrisk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. A ".env" file in the working directory and the process environment
//     (HEARTRISK_DB_PATH, HEARTRISK_SCORER_ENDPOINT, HEARTRISK_SCORER_TIMEOUT,
//     HEARTRISK_LOG_LEVEL, HEARTRISK_LOG_FORMAT). The environment wins over
//     the file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   SQLite database path
//	-s string   scorer endpoint URL
//	-t int      scorer timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "database_path": "heartrisk.db",
//	  "scorer_endpoint": "http://127.0.0.1:5000/predict",
//	  "scorer_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
