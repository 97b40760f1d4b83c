package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/dialkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the DialKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - Timeout: deadline applied to every call.
//   - Token: access token; when empty the CLI falls back to the session file.
//   - SessionFile: SQLite file holding the token saved by login.
type Config struct {
	ServerEndpointAddr string        `env:"DIALKEEPER_SERVER"`
	Timeout            time.Duration `env:"DIALKEEPER_TIMEOUT"`
	Token              string        `env:"DIALKEEPER_TOKEN"`
	SessionFile        string        `env:"DIALKEEPER_SESSION"`
}

// FileConfig is the on-disk form of Config.
type FileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	Timeout            timex.Duration `json:"timeout" yaml:"timeout"`
	SessionFile        string         `json:"session_file" yaml:"session_file"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Timeout = 10 * time.Second
	c.SessionFile = defaultSessionFile()
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dialkeeper-session.db"
	}
	return filepath.Join(dir, "dialkeeper", "session.db")
}

// Load applies defaults, then the file at path (if non-empty), then the
// environment. Later sources take precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.Timeout.Duration != 0 {
		cfg.Timeout = fc.Timeout.Duration
	}
	if fc.SessionFile != "" {
		cfg.SessionFile = fc.SessionFile
	}
	return nil
}
