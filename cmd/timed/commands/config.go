package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/timed-go/timed/pkg/benchmark"
)

// Config holds the user defaults for timed commands. Flags override it.
type Config struct {
	Format             string
	LogLevel           string
	Iterations         int
	Warmup             int
	BaselineIterations int
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/timed/timed.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error getting user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "timed", "timed.yaml"), nil
}

// LoadConfig reads defaults from the YAML file at path and from TIMED_*
// environment variables, which take precedence. A missing file is not an
// error. An empty path selects DefaultConfigPath.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := benchmark.DefaultConfig()
	v.SetDefault("format", string(benchmark.FormatText))
	v.SetDefault("log_level", "warn")
	v.SetDefault("iterations", 10)
	v.SetDefault("warmup", defaults.Warmup)
	v.SetDefault("baseline_iterations", defaults.BaselineIterations)

	v.SetEnvPrefix("TIMED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		Format:             v.GetString("format"),
		LogLevel:           v.GetString("log_level"),
		Iterations:         v.GetInt("iterations"),
		Warmup:             v.GetInt("warmup"),
		BaselineIterations: v.GetInt("baseline_iterations"),
	}
	if _, err := benchmark.ParseFormat(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
