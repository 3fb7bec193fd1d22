package config_test

import (
	"github.com/reuben-baek/kitchenpos/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "kitchenpos.yaml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Nil(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.Nil(t, err)
		assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, config.CheckerPurgomalum, cfg.Profanity.Checker)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
database:
  driver: sqlite
  dsn: "file::memory:"
  slow_threshold: 250ms
profanity:
  checker: wordlist
  words: [비속어, 욕설]
`)
		cfg, err := config.Load(path)
		require.Nil(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "file::memory:", cfg.Database.DSN)
		assert.Equal(t, 250*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, "kitchenpos", cfg.Database.MongoName)
		assert.Equal(t, config.CheckerWordList, cfg.Profanity.Checker)
		assert.Equal(t, []string{"비속어", "욕설"}, cfg.Profanity.Words)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `
database:
  driver: sqlite
  dsn: kitchenpos.db
`)
		t.Setenv("KITCHENPOS_DB_DSN", "override.db")
		t.Setenv("KITCHENPOS_PROFANITY_TIMEOUT", "2")
		t.Setenv("KITCHENPOS_PROFANITY_CHECKER", "wordlist")
		t.Setenv("KITCHENPOS_PROFANITY_WORDS", "bad,worse")

		cfg, err := config.Load(path)
		require.Nil(t, err)
		assert.Equal(t, "override.db", cfg.Database.DSN)
		assert.Equal(t, 2*time.Second, cfg.Profanity.Timeout)
		assert.Equal(t, []string{"bad", "worse"}, cfg.Profanity.Words)
	})

	t.Run("malformed env duration", func(t *testing.T) {
		path := writeConfig(t, `
database:
  driver: sqlite
  dsn: kitchenpos.db
`)
		t.Setenv("KITCHENPOS_PROFANITY_TIMEOUT", "5x")

		_, err := config.Load(path)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "KITCHENPOS_PROFANITY_TIMEOUT")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "database: [")
		_, err := config.Load(path)
		assert.NotNil(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.Config)
		valid  bool
	}{
		{name: "default", modify: func(c *config.Config) {}, valid: true},
		{name: "unknown driver", modify: func(c *config.Config) { c.Database.Driver = "oracle" }, valid: false},
		{name: "sqlite without dsn", modify: func(c *config.Config) { c.Database.DSN = "" }, valid: false},
		{name: "mongo", modify: func(c *config.Config) { c.Database.Driver = config.DriverMongo }, valid: true},
		{name: "mongo without url", modify: func(c *config.Config) {
			c.Database.Driver = config.DriverMongo
			c.Database.MongoURL = ""
		}, valid: false},
		{name: "unknown checker", modify: func(c *config.Config) { c.Profanity.Checker = "human" }, valid: false},
		{name: "purgomalum without timeout", modify: func(c *config.Config) { c.Profanity.Timeout = 0 }, valid: false},
		{name: "wordlist without words", modify: func(c *config.Config) { c.Profanity.Checker = config.CheckerWordList }, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}
