package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "sqlite:/tmp/dk.db", "-s", "secret",
			"-t", "5", "-m", "20", "-l", "debug", "-o", "otel:4318",
		}, expected: &Config{
			EndpointAddrGRPC:            "127.0.0.1:9090",
			DatabaseDSN:                 "sqlite:/tmp/dk.db",
			SecretKey:                   "secret",
			AccessTokenValidityDuration: 5 * time.Minute,
			Tolerance:                   20,
			LogLevel:                    "debug",
			OtelEndpoint:                "otel:4318",
		}},
		{name: "unrelated flags are ignored", args: []string{"cmd", "-c", "cfg.json", "-x", "1"},
			expected: &Config{}},
		{name: "bad tolerance", args: []string{"cmd", "-m", "wide"}, expectPanic: true},
		{name: "bad ttl", args: []string{"cmd", "-t", "1.5"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_TTLUntouchedWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-m", "3"}

	config := &Config{AccessTokenValidityDuration: 90 * time.Second}
	parseFlags(config)
	assert.Equal(t, 90*time.Second, config.AccessTokenValidityDuration)
	assert.Equal(t, 3.0, config.Tolerance)
}
