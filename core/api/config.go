package api

// Config holds configuration for calling a running grail-tracker server.
type Config struct {
	// BaseURL is the server root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080"`
	// UserID identifies whose progress is read and written.
	UserID string `mapstructure:"user_id" default:""`
	// ApiKey is sent as X-API-Key when set.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
