// Package config handles configuration for the server component: defaults,
// an optional JSON or YAML file, DIALKEEPER_* environment variables and
// command-line flags, applied in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/logging"
)

// Config holds runtime settings for the DialKeeper server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: postgres://... for PostgreSQL, sqlite:<path> for SQLite.
//   - SecretKey: HMAC secret for signing access tokens.
//   - AccessTokenValidityDuration: lifetime of an issued token.
//   - Tolerance: maximum per-dial distance in degrees, [0, 180].
//   - LogLevel: debug, info, warn or error.
//   - OtelEndpoint: OTLP/HTTP collector; empty disables tracing.
//   - ServiceName: reported to the tracing backend.
type Config struct {
	EndpointAddrGRPC            string        `env:"DIALKEEPER_ADDR"`
	DatabaseDSN                 string        `env:"DIALKEEPER_DATABASE_DSN"`
	SecretKey                   string        `env:"DIALKEEPER_SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"DIALKEEPER_ACCESS_TOKEN_TTL"`
	Tolerance                   float64       `env:"DIALKEEPER_TOLERANCE"`
	LogLevel                    string        `env:"DIALKEEPER_LOG_LEVEL"`
	OtelEndpoint                string        `env:"DIALKEEPER_OTEL_ENDPOINT"`
	ServiceName                 string        `env:"DIALKEEPER_SERVICE_NAME"`
}

// LoadDefaults populates Config with development defaults.
// The secret key must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "sqlite:dialkeeper.db"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = time.Hour
	c.Tolerance = common.DefaultTolerance
	c.LogLevel = "info"
	c.ServiceName = "dialkeeper"
}

// LoadConfig builds a Config from defaults, then the config file, then the
// environment, then flags. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EndpointAddrGRPC) == "" {
		return fmt.Errorf("grpc address is required")
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("access token validity must be positive, got %v", c.AccessTokenValidityDuration)
	}
	if _, err := angles.NewMatcher(c.Tolerance); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
