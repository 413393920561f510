package metrics

// Config holds the metrics endpoint configuration.
type Config struct {
	// Enabled mounts the metrics endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`

	// Path is the route the endpoint is served on.
	Path string `mapstructure:"path" default:"/metrics"`
}
