package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/compound"
	"github.com/joho/godotenv"
)

const (
	EnvOutputDir = "COMPOUND_OUTPUT_DIR"
	EnvCurrency  = "COMPOUND_CURRENCY"
	EnvLogLevel  = "COMPOUND_LOG_LEVEL"
)

// Config holds application configuration
type Config struct {
	OutputDir string // directory where reports are saved
	Currency  string // ISO code used to format amounts in Markdown
	LogLevel  string
}

// LoadConfig reads the configuration from the environment, after loading
// envFile into it. A missing envFile is not an error, and variables already
// set in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot load %q: %w", envFile, err)
		}
	}
	return Config{
		OutputDir: getEnv(EnvOutputDir, "."),
		Currency:  getEnv(EnvCurrency, "USD"),
		LogLevel:  getEnv(EnvLogLevel, "warn"),
	}, nil
}

// Override returns c with every non empty field of o.
func (c Config) Override(o Config) Config {
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.Currency != "" {
		c.Currency = o.Currency
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if !compound.IsCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if fi, err := os.Stat(c.OutputDir); err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	} else if !fi.IsDir() {
		return fmt.Errorf("invalid output directory: %q is not a directory", c.OutputDir)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}
