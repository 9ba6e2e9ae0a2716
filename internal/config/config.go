// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/motion"
)

const appName = "imageviewer"

// LoginConfig configures the simulated account.
type LoginConfig struct {
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Delay    time.Duration `yaml:"delay"`
}

// IndicatorConfig configures the active-tab indicator.
type IndicatorConfig struct {
	Width     int     `yaml:"width"`
	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// AppConfig is the global configuration.
type AppConfig struct {
	Dataset      string          `yaml:"dataset"`
	WatchDataset bool            `yaml:"watch_dataset"`
	DebugLog     string          `yaml:"debug_log"`
	Mouse        bool            `yaml:"mouse"`
	Login        LoginConfig     `yaml:"login"`
	Indicator    IndicatorConfig `yaml:"indicator"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	spring := motion.DefaultSpring()
	creds := auth.DefaultCredentials()
	return &AppConfig{
		WatchDataset: true,
		Mouse:        true,
		Login: LoginConfig{
			Username: creds.Username,
			Password: creds.Password,
			Delay:    auth.DefaultDelay,
		},
		Indicator: IndicatorConfig{
			Width:     12,
			FPS:       spring.FPS,
			Frequency: spring.Frequency,
			Damping:   spring.Damping,
		},
	}
}

// Spring returns the indicator motion settings.
func (c *AppConfig) Spring() motion.Spring {
	return motion.Spring{
		FPS:       c.Indicator.FPS,
		Frequency: c.Indicator.Frequency,
		Damping:   c.Indicator.Damping,
	}
}

// Credentials returns the simulated account.
func (c *AppConfig) Credentials() auth.Credentials {
	return auth.Credentials{Username: c.Login.Username, Password: c.Login.Password}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads configPath, or config.yaml / config.yml from the
// application config directory when configPath is empty. A missing default
// file yields the defaults; a missing explicit file is an error. Keys
// absent from the file keep their default values.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	explicit := configPath != ""
	if explicit {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		base := filepath.Join(getConfigDir(), appName)
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			if os.IsNotExist(err) && !explicit {
				continue
			}
			return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
		}
		cfg, err := parseConfig(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}
	return DefaultConfig(), nil
}

func parseConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	normalize(cfg)
	return cfg, nil
}

func normalize(cfg *AppConfig) {
	def := DefaultConfig()
	if cfg.Indicator.Width <= 0 {
		cfg.Indicator.Width = def.Indicator.Width
	}
	if cfg.Indicator.FPS <= 0 {
		cfg.Indicator.FPS = def.Indicator.FPS
	}
	if cfg.Indicator.Frequency <= 0 {
		cfg.Indicator.Frequency = def.Indicator.Frequency
	}
	if cfg.Indicator.Damping <= 0 {
		cfg.Indicator.Damping = def.Indicator.Damping
	}
	if cfg.Login.Delay < 0 {
		cfg.Login.Delay = 0
	}
	if strings.TrimSpace(cfg.Login.Username) == "" || cfg.Login.Password == "" {
		cfg.Login.Username = def.Login.Username
		cfg.Login.Password = def.Login.Password
	}
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
