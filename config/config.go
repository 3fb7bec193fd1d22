package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	CheckerPurgomalum = "purgomalum"
	CheckerWordList   = "wordlist"
)

type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Database  DatabaseConfig  `yaml:"database"`
	Profanity ProfanityConfig `yaml:"profanity"`
}

type DatabaseConfig struct {
	Driver        string        `yaml:"driver"`
	DSN           string        `yaml:"dsn"`
	LogLevel      string        `yaml:"log_level"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
	MongoURL      string        `yaml:"mongo_url"`
	MongoName     string        `yaml:"mongo_name"`
}

type ProfanityConfig struct {
	Checker string        `yaml:"checker"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	Words   []string      `yaml:"words"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver:        DriverSQLite,
			DSN:           "kitchenpos.db",
			LogLevel:      "warn",
			SlowThreshold: 100 * time.Millisecond,
			MongoURL:      "mongodb://localhost:27017",
			MongoName:     "kitchenpos",
		},
		Profanity: ProfanityConfig{
			Checker: CheckerPurgomalum,
			URL:     "https://www.purgomalum.com",
			Timeout: 5 * time.Second,
		},
	}
}

// Load reads path over the defaults, applies KITCHENPOS_* environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	c.LogLevel = getEnv("KITCHENPOS_LOG_LEVEL", c.LogLevel)
	c.Database.Driver = getEnv("KITCHENPOS_DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("KITCHENPOS_DB_DSN", c.Database.DSN)
	c.Database.LogLevel = getEnv("KITCHENPOS_DB_LOG_LEVEL", c.Database.LogLevel)
	if c.Database.SlowThreshold, err = getEnvAsDuration("KITCHENPOS_DB_SLOW_THRESHOLD", c.Database.SlowThreshold); err != nil {
		return err
	}
	c.Database.MongoURL = getEnv("KITCHENPOS_MONGO_URL", c.Database.MongoURL)
	c.Database.MongoName = getEnv("KITCHENPOS_MONGO_NAME", c.Database.MongoName)
	c.Profanity.Checker = getEnv("KITCHENPOS_PROFANITY_CHECKER", c.Profanity.Checker)
	c.Profanity.URL = getEnv("KITCHENPOS_PROFANITY_URL", c.Profanity.URL)
	if c.Profanity.Timeout, err = getEnvAsDuration("KITCHENPOS_PROFANITY_TIMEOUT", c.Profanity.Timeout); err != nil {
		return err
	}
	if words := getEnv("KITCHENPOS_PROFANITY_WORDS", ""); words != "" {
		c.Profanity.Words = strings.Split(words, ",")
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for sqlite")
		}
	case DriverMongo:
		if c.Database.MongoURL == "" || c.Database.MongoName == "" {
			return errors.New("database.mongo_url and database.mongo_name are required for mongo")
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}

	switch c.Profanity.Checker {
	case CheckerPurgomalum:
		if c.Profanity.Timeout <= 0 {
			return errors.New("profanity.timeout must be positive")
		}
	case CheckerWordList:
		if len(c.Profanity.Words) == 0 {
			return errors.New("profanity.words is required for wordlist")
		}
	default:
		return fmt.Errorf("unknown profanity.checker %q", c.Profanity.Checker)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts a Go duration ("500ms") or a whole number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return 0, fmt.Errorf("%s: invalid duration %q", key, value)
}
