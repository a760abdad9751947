package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded documents per request.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

const (
	// DefaultBodyLimitMB is used when BodyLimitMB is not positive.
	DefaultBodyLimitMB = 32
	// MaxBodyLimitMB bounds BodyLimitMB.
	MaxBodyLimitMB = 512
)

// BodyLimit returns the upload limit in bytes, falling back to the default when unset.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	if mb > MaxBodyLimitMB {
		mb = MaxBodyLimitMB
	}
	return mb * 1024 * 1024
}
