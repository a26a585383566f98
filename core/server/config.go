package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded import files.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// DefaultBodyLimitMB is used when BodyLimitMB is not positive.
const DefaultBodyLimitMB = 32

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	return mb << 20
}
