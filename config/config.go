// Package config loads the journal settings from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	Currency       string  `json:"currency" yaml:"currency"`
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
}

// RiskConfig contains the risk-limit settings shown on the dashboard and
// used by the limit checks.
type RiskConfig struct {
	GlobalRiskLimit float64 `json:"global_risk_limit" yaml:"global_risk_limit"`
	GainTargetPct   float64 `json:"gain_target_pct" yaml:"gain_target_pct"`
	LossLimitPct    float64 `json:"loss_limit_pct" yaml:"loss_limit_pct"`
	RiskFreeRate    float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
}

// StoreConfig selects and locates the trade store backend.
type StoreConfig struct {
	Type   string `json:"type" yaml:"type"` // "sqlite" or "memory"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// MarketConfig controls the benchmark return series used for beta.
type MarketConfig struct {
	ReturnsSource string `json:"returns_source" yaml:"returns_source"` // "simulated"
}

// LoggingConfig contains diagnostics parameters.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.InitialCapital < 0 {
		return fmt.Errorf("account.initial_capital must not be negative")
	}
	if c.Risk.GlobalRiskLimit < 0 {
		return fmt.Errorf("risk.global_risk_limit must not be negative")
	}
	if c.Risk.GainTargetPct < 0 || c.Risk.GainTargetPct > 100 {
		return fmt.Errorf("risk.gain_target_pct must be between 0 and 100")
	}
	if c.Risk.LossLimitPct < 0 || c.Risk.LossLimitPct > 100 {
		return fmt.Errorf("risk.loss_limit_pct must be between 0 and 100")
	}
	if c.Store.Type != "sqlite" && c.Store.Type != "memory" {
		return fmt.Errorf("store.type must be 'sqlite' or 'memory'")
	}
	if c.Store.Type == "sqlite" && c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path required for sqlite type")
	}
	if c.Market.ReturnsSource != "simulated" {
		return fmt.Errorf("unknown market.returns_source: %s", c.Market.ReturnsSource)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:       "BRL",
			InitialCapital: 1800,
		},
		Risk: RiskConfig{
			GlobalRiskLimit: 500,
			GainTargetPct:   5,
			LossLimitPct:    10,
			RiskFreeRate:    0.02,
		},
		Store: StoreConfig{
			Type:   "sqlite",
			DBPath: "./futjournal.sqlite",
		},
		Market: MarketConfig{
			ReturnsSource: "simulated",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
