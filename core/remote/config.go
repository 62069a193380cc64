package remote

// Config holds configuration for the remote layout API.
type Config struct {
	// BaseURL is the scheme and host of the REST API.
	BaseURL string `mapstructure:"base_url" default:"https://public-api.wordpress.com"`
	// UserAgent tags every request, including anonymous ones.
	UserAgent string `mapstructure:"user_agent" default:"layout-catalog/1.0"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
