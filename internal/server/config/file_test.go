package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	want := &Config{
		EndpointAddrGRPC:            "www.example:9000",
		DatabaseDSN:                 "postgres://u:p@db:5432/dk",
		SecretKey:                   "my_secret_key",
		AccessTokenValidityDuration: 30 * time.Minute,
		Tolerance:                   0,
		LogLevel:                    "warn",
		OtelEndpoint:                "collector:4318",
		ServiceName:                 "dk-test",
	}

	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"endpoint_addr_grpc": "www.example:9000",
			"database_dsn": "postgres://u:p@db:5432/dk",
			"secret_key": "my_secret_key",
			"access_token_validity_duration": "30m",
			"tolerance": 0,
			"log_level": "warn",
			"otel_endpoint": "collector:4318",
			"service_name": "dk-test"
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NotPanics(t, func() { parseFile(cfg) })
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", `
endpoint_addr_grpc: www.example:9000
database_dsn: postgres://u:p@db:5432/dk
secret_key: my_secret_key
access_token_validity_duration: 30m
tolerance: 0
log_level: warn
otel_endpoint: collector:4318
service_name: dk-test
`)
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NotPanics(t, func() { parseFile(cfg) })
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		path := writeTempFile(t, "partial.yml", "log_level: debug\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 15.0, cfg.Tolerance)
		assert.Equal(t, time.Hour, cfg.AccessTokenValidityDuration)
	})

	t.Run("no file flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{}
		cfg.LoadDefaults()
		before := *cfg
		parseFile(cfg)
		assert.Equal(t, before, *cfg)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("malformed file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", writeTempFile(t, "bad.json", `{"tolerance": "wide"}`)}
		assert.Panics(t, func() { parseFile(&Config{}) })
	})
}
