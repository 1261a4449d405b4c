package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds the server configuration, read from FACE_MCP_*
// environment variables.
type Settings struct {
	SourceURL   string        `envconfig:"FACE_MCP_SOURCE_URL" default:"https://thispersondoesnotexist.com"`
	HTTPTimeout time.Duration `envconfig:"FACE_MCP_HTTP_TIMEOUT" default:"30s"`
	LogLevel    string        `envconfig:"FACE_MCP_LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("face_mcp", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
