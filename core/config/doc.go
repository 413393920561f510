// Package config provides configuration management for the trusted write API.
//
// It uses Viper for environment variables and godotenv for an optional .env file.
// Defaults live on the partial config structs as `default` tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, admin API key, body limit
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: MinIO credentials for the submission archive
//   - Log: logging level and format
//   - Auth: signing scheme, header names, credential cache TTL
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Auth.Scheme)
package config
