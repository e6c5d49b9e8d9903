// Package config handles loading and validating optimizer configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the optimizer daemon.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Device    DeviceConfig    `yaml:"device"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"logLevel"`
}

// DeviceConfig configures the memory-mapped accelerator window.
type DeviceConfig struct {
	// MemPath is the device node carrying the register window,
	// typically /dev/mem or a UIO node. Empty disables the hardware
	// path entirely and forces software execution.
	MemPath        string `yaml:"memPath"`
	BaseAddress    uint64 `yaml:"baseAddress"`
	MapSize        uint32 `yaml:"mapSize"`
	PollIntervalUs int    `yaml:"pollIntervalUs"`
	TimeoutMs      int    `yaml:"timeoutMs"`
}

// OptimizerConfig holds optimize-call defaults.
type OptimizerConfig struct {
	RiskLimit       uint32 `yaml:"riskLimit"`
	LatencyBudgetNs uint32 `yaml:"latencyBudgetNs"`
	DefaultStrategy string `yaml:"defaultStrategy"`
	TickIntervalMs  int    `yaml:"tickIntervalMs"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, fmt.Errorf("setting config defaults: %w", err)
	}

	return &cfg, nil
}

// setDefaults applies sensible defaults for optional fields.
func (c *Config) setDefaults() error {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Device.BaseAddress == 0 {
		c.Device.BaseAddress = 0x40000000
	}
	if c.Device.MapSize == 0 {
		c.Device.MapSize = 0x10000 // 64KB register window
	}
	if c.Device.PollIntervalUs == 0 {
		c.Device.PollIntervalUs = 100
	}
	if c.Device.TimeoutMs == 0 {
		c.Device.TimeoutMs = 100
	}
	if c.Optimizer.RiskLimit == 0 {
		c.Optimizer.RiskLimit = 100000
	}
	if c.Optimizer.LatencyBudgetNs == 0 {
		c.Optimizer.LatencyBudgetNs = 1000
	}
	if c.Optimizer.DefaultStrategy == "" {
		c.Optimizer.DefaultStrategy = "market_making"
	}
	if c.Optimizer.TickIntervalMs == 0 {
		c.Optimizer.TickIntervalMs = 500
	}
	return nil
}
