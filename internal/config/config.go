/*
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the chaincode process settings from an optional YAML
// file and the environment. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds the settings of the chaincode process
type Config struct {
	LogLevel string `yaml:"logLevel"`
	Server   Server `yaml:"server"`
	Info     Info   `yaml:"info"`
}

// Server configures chaincode-as-a-service mode. An empty Address means the
// peer launches the chaincode itself.
type Server struct {
	Address string `yaml:"address"`
	CCID    string `yaml:"ccid"`
	TLS     TLS    `yaml:"tls"`
}

// TLS holds the file paths of the chaincode server credentials
type TLS struct {
	Disabled     bool   `yaml:"disabled"`
	KeyFile      string `yaml:"keyFile"`
	CertFile     string `yaml:"certFile"`
	ClientCAFile string `yaml:"clientCAFile"`
}

// Info is published in the contract metadata
type Info struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		LogLevel: "info",
		Server:   Server{TLS: TLS{Disabled: true}},
		Info:     Info{Title: "coffee-harvest-registry", Version: "1.0.0"},
	}
}

// GetEnvDefault returns the value of key when it is set, even to "", and
// current otherwise. Load layers each environment override on top of the
// value read from the YAML file this way.
func GetEnvDefault(key, current string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return current
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %v", path, err)
		}
	}

	cfg.LogLevel = GetEnvDefault("COFFEECC_LOG_LEVEL", cfg.LogLevel)
	cfg.Server.Address = GetEnvDefault("CHAINCODE_SERVER_ADDRESS", cfg.Server.Address)
	cfg.Server.CCID = GetEnvDefault("CHAINCODE_ID", cfg.Server.CCID)
	cfg.Server.TLS.KeyFile = GetEnvDefault("CHAINCODE_TLS_KEY", cfg.Server.TLS.KeyFile)
	cfg.Server.TLS.CertFile = GetEnvDefault("CHAINCODE_TLS_CERT", cfg.Server.TLS.CertFile)
	cfg.Server.TLS.ClientCAFile = GetEnvDefault("CHAINCODE_CLIENT_CA_CERT", cfg.Server.TLS.ClientCAFile)
	if v, ok := os.LookupEnv("CHAINCODE_TLS_DISABLED"); ok {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CHAINCODE_TLS_DISABLED %q: %v", v, err)
		}
		cfg.Server.TLS.Disabled = disabled
	}

	return cfg, cfg.Validate()
}

// Validate checks that the server settings are complete
func (c Config) Validate() error {
	if c.Server.Address == "" {
		return nil
	}
	if c.Server.CCID == "" {
		return fmt.Errorf("server address %s requires a chaincode id", c.Server.Address)
	}
	if !c.Server.TLS.Disabled && (c.Server.TLS.KeyFile == "" || c.Server.TLS.CertFile == "") {
		return fmt.Errorf("tls is enabled but key or cert file is missing")
	}
	return nil
}
