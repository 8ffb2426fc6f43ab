package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// CatalogCacheTTL is how long a loaded catalog is served from memory.
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl" default:"5m"`
	// BodyLimit caps request bodies in bytes; bulk imports are the largest payloads.
	BodyLimit int `mapstructure:"body_limit" default:"8388608"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// RequiresAuth reports whether requests must carry the API key.
func (c Config) RequiresAuth() bool {
	return c.ApiKey != ""
}
