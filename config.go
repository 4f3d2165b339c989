package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // HEALTH_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/BurntSushi/toml"
	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
)

// config holds server settings. Values come from defaults, then the optional
// TOML file section for the current environment, then environment variables.
type config struct {
	Addr            string `toml:"addr"`
	Timezone        string `toml:"timezone"`
	ReadTimeoutSec  int    `toml:"read_timeout_sec"`
	WriteTimeoutSec int    `toml:"write_timeout_sec"`
	GinMode         string `toml:"gin_mode"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	LogToStdout bool   `toml:"log_to_stdout"`
	LogJSON     bool   `toml:"log_json"`
}

// configFile is the TOML layout: one section per environment.
type configFile struct {
	Development config `toml:"development"`
	Production  config `toml:"production"`
}

func (f *configFile) get(env string) (*config, error) {
	switch strings.ToLower(env) {
	case "", "dev", "development":
		return &f.Development, nil
	case "prod", "production":
		return &f.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func defaultConfig() config {
	return config{
		Addr:            "localhost:3000",
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 10,
		GinMode:         gin.ReleaseMode,
		LogLevel:        "info",
		LogToStdout:     true,
	}
}

// loadConfig builds the config. getenv is os.Getenv outside of tests.
func loadConfig(getenv func(string) string) (*config, error) {
	file := configFile{Development: defaultConfig(), Production: defaultConfig()}
	if path := getenv("HEALTH_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg, err := file.get(getenv("HEALTH_ENV"))
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with any environment variable that is set.
func applyEnv(cfg *config, getenv func(string) string) error {
	var errs error

	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setString("HEALTH_ADDR", &cfg.Addr)
	setString("HEALTH_TIMEZONE", &cfg.Timezone)
	setString("GIN_MODE", &cfg.GinMode)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("LOG_FILE", &cfg.LogFile)
	setBool("LOG_TO_STDOUT", &cfg.LogToStdout)
	setBool("LOG_JSON", &cfg.LogJSON)

	return errs
}

// validate reports every problem at once rather than stopping at the first.
func (c *config) validate() error {
	var errs error
	if strings.TrimSpace(c.Addr) == "" {
		errs = multierr.Append(errs, fmt.Errorf("addr must not be empty"))
	}
	if _, err := c.location(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("timezone: %w", err))
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("unknown log level: %q", c.LogLevel))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown gin mode: %q", c.GinMode))
	}
	if c.ReadTimeoutSec < 0 || c.WriteTimeoutSec < 0 {
		errs = multierr.Append(errs, fmt.Errorf("timeouts must not be negative"))
	}
	return errs
}

// location resolves Timezone; empty or "Local" means the host zone.
func (c *config) location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *config) readTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

func (c *config) writeTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}
