// Package config loads game settings from defaults, an optional YAML file
// and HANGMAN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"github.com/samdwyer/hangman/internal/hangman"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible answer selection.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	MaxFails    int `yaml:"max_fails"`
	MinWordSize int `yaml:"min_word_size"`
	MaxWordSize int `yaml:"max_word_size"`

	WordsFile string `yaml:"words_file"` // Empty uses the embedded list
	SaveDir   string `yaml:"save_dir"`
	StatsDB   string `yaml:"stats_db"` // Empty disables statistics

	LogFile  string `yaml:"log_file"` // Empty discards logs
	LogLevel string `yaml:"log_level"`

	Plain     bool `yaml:"plain"`     // Line-based prompt instead of the full-screen UI
	Telemetry bool `yaml:"telemetry"` // Export traces over OTLP
}

// Default returns the built-in configuration.
func Default() Config {
	rules := hangman.DefaultRules()
	return Config{
		MaxFails:    rules.MaxFails,
		MinWordSize: rules.MinWordSize,
		MaxWordSize: rules.MaxWordSize,
		SaveDir:     "saves",
		StatsDB:     "data/stats.db",
		LogFile:     "hangman.log",
		LogLevel:    "info",
	}
}

// Load builds the configuration. path may be empty; a missing file at a
// non-empty path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s not found", path)
			}
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Rules returns the round limits described by the configuration.
func (c Config) Rules() hangman.Rules {
	return hangman.Rules{
		MaxFails:    c.MaxFails,
		MinWordSize: c.MinWordSize,
		MaxWordSize: c.MaxWordSize,
	}
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	if c.SaveDir == "" {
		return errors.New("save_dir must not be empty")
	}
	return nil
}

// applyEnv overrides fields from HANGMAN_* environment variables.
func (c *Config) applyEnv() {
	c.Seed = int64(getEnvInt("HANGMAN_SEED", int(c.Seed)))
	c.MaxFails = getEnvInt("HANGMAN_MAX_FAILS", c.MaxFails)
	c.MinWordSize = getEnvInt("HANGMAN_MIN_WORD_SIZE", c.MinWordSize)
	c.MaxWordSize = getEnvInt("HANGMAN_MAX_WORD_SIZE", c.MaxWordSize)
	c.WordsFile = getEnv("HANGMAN_WORDS_FILE", c.WordsFile)
	c.SaveDir = getEnv("HANGMAN_SAVE_DIR", c.SaveDir)
	c.StatsDB = getEnv("HANGMAN_STATS_DB", c.StatsDB)
	c.LogFile = getEnv("HANGMAN_LOG_FILE", c.LogFile)
	c.LogLevel = getEnv("HANGMAN_LOG_LEVEL", c.LogLevel)
	c.Plain = getEnvBool("HANGMAN_PLAIN", c.Plain)
	c.Telemetry = getEnvBool("HANGMAN_TELEMETRY", c.Telemetry)
}

// getEnv returns the variable's value when it is set, even to "".
// An explicitly empty HANGMAN_STATS_DB is how statistics are switched off.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Bool("default", fallback).Msg("invalid bool, using default")
		return fallback
	}
	return b
}
