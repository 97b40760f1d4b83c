package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "sqlite:dialkeeper.db", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, 15.0, c.Tolerance)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.OtelEndpoint)
	assert.Equal(t, "dialkeeper", c.ServiceName)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.json", `{"endpoint_addr_grpc": ":7000", "tolerance": 5, "log_level": "debug"}`)
	t.Setenv("DIALKEEPER_TOLERANCE", "7")
	t.Setenv("DIALKEEPER_SECRET_KEY", "from-env")
	os.Args = []string{"testbin", "-c", path, "-m", "9"}

	c := LoadConfig()
	require.NotNil(t, c)

	assert.Equal(t, ":7000", c.EndpointAddrGRPC, "file overrides default")
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "from-env", c.SecretKey, "env overrides default")
	assert.Equal(t, 9.0, c.Tolerance, "flag overrides env and file")
	assert.Equal(t, "sqlite:dialkeeper.db", c.DatabaseDSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no address", func(c *Config) { c.EndpointAddrGRPC = " " }},
		{"no dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"no secret", func(c *Config) { c.SecretKey = "" }},
		{"zero ttl", func(c *Config) { c.AccessTokenValidityDuration = 0 }},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }},
		{"tolerance above half turn", func(c *Config) { c.Tolerance = 181 }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	var c Config
	c.LoadDefaults()
	c.Tolerance = 0
	assert.NoError(t, c.Validate(), "zero tolerance is allowed")
}
