package server

// DefaultBodyLimit is used when BodyLimitBytes is not positive.
const DefaultBodyLimit = 4 * 1024 * 1024

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey guards operational endpoints. Empty disables the guard.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitBytes caps request bodies.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
}

// BodyLimit returns the effective request body limit.
func (c Config) BodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return DefaultBodyLimit
	}
	return c.BodyLimitBytes
}
