// SPDX-License-Identifier: MIT

// Package config loads process configuration from the environment, with an
// optional .env file layered underneath.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete process configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Session  SessionConfig
	Analysis AnalysisConfig
	AutGroup AutGroupConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr      string
	CacheSize int
}

// LogConfig selects the zerolog level and output format ("json" or "console").
type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig holds defaults for new sessions.
type SessionConfig struct {
	DefaultN        int
	Eta             float64
	MaxStepsPerCall int
}

// AnalysisConfig holds tolerances for structure and design analysis.
type AnalysisConfig struct {
	StructureTol float64
	DesignKMax   int
	DesignTol    float64
}

// AutGroupConfig describes the automorphism collaborator command line.
type AutGroupConfig struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080", CacheSize: 128},
		Log:     LogConfig{Level: "info", Format: "json"},
		Session: SessionConfig{DefaultN: 24, Eta: 0.01, MaxStepsPerCall: 10},
		Analysis: AnalysisConfig{
			StructureTol: 2e-3,
			DesignKMax:   20,
			DesignTol:    1e-6,
		},
		AutGroup: AutGroupConfig{
			Command: "python3",
			Args:    []string{"scripts/autgroup.py"},
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads the given .env files (default ".env") if they exist, then the
// environment, and validates the result. Variables already set in the
// environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read env file: %w", err)
	}

	def := Default()
	cfg := &Config{
		Server: ServerConfig{
			Addr:      getEnvOrDefault("SPHERELAB_ADDR", def.Server.Addr),
			CacheSize: getEnvIntOrDefault("SPHERELAB_CACHE_SIZE", def.Server.CacheSize),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", def.Log.Level),
			Format: getEnvOrDefault("LOG_FORMAT", def.Log.Format),
		},
		Session: SessionConfig{
			DefaultN:        getEnvIntOrDefault("SPHERELAB_DEFAULT_N", def.Session.DefaultN),
			Eta:             getEnvFloatOrDefault("SPHERELAB_ETA", def.Session.Eta),
			MaxStepsPerCall: getEnvIntOrDefault("SPHERELAB_MAX_STEPS_PER_CALL", def.Session.MaxStepsPerCall),
		},
		Analysis: AnalysisConfig{
			StructureTol: getEnvFloatOrDefault("SPHERELAB_STRUCTURE_TOL", def.Analysis.StructureTol),
			DesignKMax:   getEnvIntOrDefault("SPHERELAB_DESIGN_KMAX", def.Analysis.DesignKMax),
			DesignTol:    getEnvFloatOrDefault("SPHERELAB_DESIGN_TOL", def.Analysis.DesignTol),
		},
		AutGroup: AutGroupConfig{
			Command: getEnvOrDefault("SPHERELAB_AUTGROUP_CMD", def.AutGroup.Command),
			Args:    def.AutGroup.Args,
			Timeout: getEnvDurationOrDefault("SPHERELAB_AUTGROUP_TIMEOUT", def.AutGroup.Timeout),
		},
	}
	if args := os.Getenv("SPHERELAB_AUTGROUP_ARGS"); args != "" {
		cfg.AutGroup.Args = strings.Fields(args)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects non-positive sizes, steps, tolerances and timeouts.
func (c *Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("SPHERELAB_ADDR is empty: %w", ErrInvalid)
	case c.Server.CacheSize <= 0:
		return fmt.Errorf("SPHERELAB_CACHE_SIZE=%d: %w", c.Server.CacheSize, ErrInvalid)
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("LOG_FORMAT=%q: %w", c.Log.Format, ErrInvalid)
	case c.Session.DefaultN <= 0:
		return fmt.Errorf("SPHERELAB_DEFAULT_N=%d: %w", c.Session.DefaultN, ErrInvalid)
	case !(c.Session.Eta > 0):
		return fmt.Errorf("SPHERELAB_ETA=%g: %w", c.Session.Eta, ErrInvalid)
	case c.Session.MaxStepsPerCall <= 0:
		return fmt.Errorf("SPHERELAB_MAX_STEPS_PER_CALL=%d: %w", c.Session.MaxStepsPerCall, ErrInvalid)
	case !(c.Analysis.StructureTol > 0):
		return fmt.Errorf("SPHERELAB_STRUCTURE_TOL=%g: %w", c.Analysis.StructureTol, ErrInvalid)
	case c.Analysis.DesignKMax <= 0:
		return fmt.Errorf("SPHERELAB_DESIGN_KMAX=%d: %w", c.Analysis.DesignKMax, ErrInvalid)
	case !(c.Analysis.DesignTol > 0):
		return fmt.Errorf("SPHERELAB_DESIGN_TOL=%g: %w", c.Analysis.DesignTol, ErrInvalid)
	case c.AutGroup.Command == "":
		return fmt.Errorf("SPHERELAB_AUTGROUP_CMD is empty: %w", ErrInvalid)
	case c.AutGroup.Timeout <= 0:
		return fmt.Errorf("SPHERELAB_AUTGROUP_TIMEOUT=%s: %w", c.AutGroup.Timeout, ErrInvalid)
	}

	return nil
}

// Helper functions for environment variable parsing. Unparseable values
// fall back to the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
