package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/dialkeeper/internal/flagx"
	"github.com/dmitrijs2005/dialkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Absent keys keep the value
// from earlier sources; Tolerance is a pointer because 0 is meaningful.
type FileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	Tolerance                   *float64       `json:"tolerance" yaml:"tolerance"`
	LogLevel                    string         `json:"log_level" yaml:"log_level"`
	OtelEndpoint                string         `json:"otel_endpoint" yaml:"otel_endpoint"`
	ServiceName                 string         `json:"service_name" yaml:"service_name"`
}

// parseFile loads the file named by -c/-config, if any. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.Tolerance != nil {
		config.Tolerance = *c.Tolerance
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.OtelEndpoint != "" {
		config.OtelEndpoint = c.OtelEndpoint
	}
	if c.ServiceName != "" {
		config.ServiceName = c.ServiceName
	}
}
