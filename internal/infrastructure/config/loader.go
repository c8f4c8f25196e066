// Package config loads, validates and watches the floaty configuration.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	fs        afero.Fs
	file      string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// Option customizes a Manager.
type Option func(*Manager)

// WithConfigFile reads the given file instead of searching the config dir.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.file = path
	}
}

// WithFs swaps the filesystem viper reads from.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) {
		m.fs = fs
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		fs:        afero.NewOsFs(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	v := m.viper
	v.SetFs(m.fs)

	if m.file != "" {
		v.SetConfigFile(m.file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// FLOATY_ANIMATION_DURATION_MS, FLOATY_HOSTS_DENY, ...
	v.SetEnvPrefix("FLOATY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FLOATY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLOATY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FLOATY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLOATY_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if m.file != "" {
		if exists, statErr := afero.Exists(m.fs, m.file); statErr == nil && !exists {
			return nil
		}
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFileForErrors(), err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFileForErrors(),
			err,
		)
	}
	return config, nil
}

// TargetFile returns the config file in use, or the path Save and Init write
// to when none was found.
func (m *Manager) TargetFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFileForErrors()
}

func (m *Manager) configFileForErrors() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.file != "" {
		return m.file
	}
	if file, err := GetConfigFile(); err == nil {
		return file
	}
	return "config.toml"
}

func normalizeConfig(config *Config) {
	config.Overlay.Gravity = strings.ToLower(strings.TrimSpace(config.Overlay.Gravity))
	if config.Overlay.Gravity == "" {
		config.Overlay.Gravity = defaultGravity
	}

	switch AnimationKind(strings.ToLower(strings.TrimSpace(string(config.Animation.Kind)))) {
	case "", AnimationFade:
		config.Animation.Kind = AnimationFade
	case AnimationNone:
		config.Animation.Kind = AnimationNone
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = defaultLogLevel
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Hosts.Allow = cleanPatterns(config.Hosts.Allow)
	config.Hosts.Deny = cleanPatterns(config.Hosts.Deny)
}

func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Hosts.Allow = slices.Clone(m.config.Hosts.Allow)
	configCopy.Hosts.Deny = slices.Clone(m.config.Hosts.Deny)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Save validates cfg, writes it to the config file and reloads.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.configFileForErrors()
	if err := WriteConfig(m.fs, cfg, path); err != nil {
		return err
	}
	m.viper.SetConfigFile(path)

	// With a watcher running, fsnotify triggers the reload.
	if !m.watching {
		return m.reload()
	}
	return nil
}
