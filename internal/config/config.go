package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reqcover/reqcover/internal/coverage"
)

const (
	configPathEnv = "REQCOVER_CONFIG"
	portEnv       = "PORT"
	logLevelEnv   = "REQCOVER_LOG_LEVEL"
	thresholdEnv  = "REQCOVER_THRESHOLD"
)

// Config holds the settings shared across the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port           string `yaml:"port"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
}

// AnalysisConfig carries the coverage matching defaults.
type AnalysisConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(thresholdEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Analysis.Threshold = parsed
		} else {
			log.Printf("config: ignoring invalid threshold %q", v)
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Port != "" {
		base.Server.Port = override.Server.Port
	}
	if override.Server.MaxUploadBytes > 0 {
		base.Server.MaxUploadBytes = override.Server.MaxUploadBytes
	}

	if override.Analysis.Threshold > 0 && override.Analysis.Threshold <= 1 {
		base.Analysis.Threshold = override.Analysis.Threshold
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			MaxUploadBytes: 10 << 20,
		},
		Analysis: AnalysisConfig{
			Threshold: coverage.DefaultThreshold,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
