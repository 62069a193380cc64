// Package config provides configuration management for the layout catalog service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each field in a `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: driver and connection details of the local layout store
//   - Storage: S3/MinIO credentials and bucket used for catalog snapshots
//   - Remote: base URL, user agent and timeout of the remote layout API
//   - Layouts: display scale and archive settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config
