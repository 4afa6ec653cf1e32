package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the wallet data dir.
const FileName = "workwealth.yaml"

// Config represents the top-level workwealth.yaml configuration.
type Config struct {
	Owner  OwnerConfig  `yaml:"owner"`
	Wallet WalletConfig `yaml:"wallet"`
	Git    GitConfig    `yaml:"git"`
}

// OwnerConfig identifies the wallet owner.
type OwnerConfig struct {
	Name string `yaml:"name"`
}

// WalletConfig controls currency presentation and the simulated
// processing delay.
type WalletConfig struct {
	Currency         string `yaml:"currency"` // ISO 4217 code, e.g. "NGN"
	Locale           string `yaml:"locale"`   // BCP 47 tag, e.g. "en-NG"
	SimulatedDelayMS int    `yaml:"simulated_delay_ms"`
}

// SimulatedDelay returns the configured processing delay.
func (w WalletConfig) SimulatedDelay() time.Duration {
	return time.Duration(w.SimulatedDelayMS) * time.Millisecond
}

// GitConfig controls git integration for the wallet data dir.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a workwealth.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new wallet.
func Default(ownerName string) *Config {
	return &Config{
		Owner: OwnerConfig{
			Name: ownerName,
		},
		Wallet: WalletConfig{
			Currency:         "NGN",
			Locale:           "en-NG",
			SimulatedDelayMS: 1500,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "WorkWealth",
			AuthorEmail: "wallet@workwealth.app",
		},
	}
}
