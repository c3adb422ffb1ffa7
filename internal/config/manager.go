package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if configPath != "" {
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return fmt.Errorf("config not loaded")
	}

	// Env-only deployments have no file to re-read; the Unmarshal below
	// still picks up changed TRENDBOARD_* variables.
	if m.viper.ConfigFileUsed() != "" {
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to reload config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	if configPath != "" {
		m.viper.SetConfigFile(configPath)
	}

	m.viper.SetEnvPrefix("TRENDBOARD")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	// Registering every key via SetDefault lets AutomaticEnv resolve
	// TRENDBOARD_* variables during Unmarshal even without a file.
	m.viper.SetDefault("server.host", "0.0.0.0")
	m.viper.SetDefault("server.port", 8080)
	m.viper.SetDefault("provider.base_url", "")
	m.viper.SetDefault("provider.api_key", "")
	m.viper.SetDefault("provider.timeout_ms", 30000)
	m.viper.SetDefault("provider.max_retries", 2)
	m.viper.SetDefault("provider.retry_delay_ms", 300)
	m.viper.SetDefault("shaper.top_n", 0)
	m.viper.SetDefault("shaper.min_interest", 0)
	m.viper.SetDefault("logger.level", "info")
	m.viper.SetDefault("logger.format", "json")
	m.viper.SetDefault("logger.output", "stdout")
	m.viper.SetDefault("logger.time_format", "")
}

func (m *manager) validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url cannot be empty")
	}

	if config.Provider.TimeoutMs <= 0 {
		return fmt.Errorf("provider.timeout_ms must be positive")
	}

	if config.Provider.MaxRetries < 0 {
		return fmt.Errorf("provider.max_retries cannot be negative")
	}

	if config.Shaper.TopN < 0 {
		return fmt.Errorf("shaper.top_n cannot be negative")
	}

	if config.Shaper.MinInterest < 0 || config.Shaper.MinInterest > 100 {
		return fmt.Errorf("shaper.min_interest must be within 0-100")
	}

	return nil
}
