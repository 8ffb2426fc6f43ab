// Package config provides configuration management for the grail tracker.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file (read with godotenv). Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, catalog cache TTL
//   - Database: MySQL or sqlite connection for the user-items store
//   - Storage: S3/MinIO credentials and the bucket holding catalog objects
//   - Log: Logging level and format
//   - Client: base URL, user id and API key of a running server
//   - Sync: debounce window for single-item progress writes
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
