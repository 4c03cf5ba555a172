package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes the COMPOUND_* variables for the duration of the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvOutputDir, EnvCurrency, EnvLogLevel} {
		t.Setenv(key, "") // registers the restore.
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{OutputDir: ".", Currency: "USD", LogLevel: "warn"}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	unsetEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "COMPOUND_CURRENCY=EUR\nCOMPOUND_LOG_LEVEL=debug\nCOMPOUND_OUTPUT_DIR=" + dir + "\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	// the environment takes precedence over the file.
	t.Setenv(EnvLogLevel, "error")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, Config{OutputDir: dir, Currency: "EUR", LogLevel: "error"}, cfg)
}

func TestConfigOverride(t *testing.T) {
	base := Config{OutputDir: ".", Currency: "USD", LogLevel: "warn"}
	got := base.Override(Config{Currency: "GBP"})
	assert.Equal(t, Config{OutputDir: ".", Currency: "GBP", LogLevel: "warn"}, got)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{OutputDir: dir, Currency: "EUR", LogLevel: "info"}, false},
		{"unknown currency", Config{OutputDir: dir, Currency: "XXXX", LogLevel: "info"}, true},
		{"unknown log level", Config{OutputDir: dir, Currency: "USD", LogLevel: "verbose"}, true},
		{"missing output dir", Config{OutputDir: filepath.Join(dir, "nope"), Currency: "USD", LogLevel: "info"}, true},
		{"output dir is a file", Config{OutputDir: file, Currency: "USD", LogLevel: "info"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
