// Package config provides centralized configuration defaults for phonemize.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigFile represents the structure of config.toml
type ConfigFile struct {
	Defaults Defaults `toml:"defaults"`
	Speech   Speech   `toml:"speech"`
}

// Defaults holds all default values
type Defaults struct {
	Voice          string `toml:"voice"`
	Dialect        string `toml:"dialect"`
	Workers        int    `toml:"workers"`
	OutputDir      string `toml:"output_dir"`
	Database       string `toml:"database"`
	NormalizeInput bool   `toml:"normalize_input"`
	KanaReading    bool   `toml:"kana_reading"`
	Metrics        bool   `toml:"metrics"`
	MetricsDir     string `toml:"metrics_dir"`
	Quiet          bool   `toml:"quiet"`
	Verbose        bool   `toml:"verbose"`
}

// Speech configures the acoustic model collaborator.
type Speech struct {
	SampleRate       int `toml:"sample_rate"`
	BreakerFailures  int `toml:"breaker_failures"`
	BreakerTimeoutMS int `toml:"breaker_timeout_ms"`
}

// Hardcoded fallback defaults (used if config.toml not found)
var fallbackDefaults = Defaults{
	Voice:          "af_heart",
	Dialect:        "",
	Workers:        0,
	OutputDir:      "output/phonemes",
	Database:       "output/phonemes.db",
	NormalizeInput: false,
	KanaReading:    false,
	Metrics:        true,
	MetricsDir:     "output/metrics",
	Quiet:          false,
	Verbose:        false,
}

var fallbackSpeech = Speech{
	SampleRate:       24000,
	BreakerFailures:  3,
	BreakerTimeoutMS: 30000,
}

// EnvFile is the dotenv file loaded before configuration is read.
const EnvFile = ".env"

// loaded holds the parsed config (nil if not loaded yet)
var loaded *ConfigFile

// Load reads .env and config.toml from the project root. Values missing
// from the file keep their fallback defaults.
func Load() *ConfigFile {
	if loaded != nil {
		return loaded
	}

	// A missing .env is not an error.
	_ = godotenv.Load(EnvFile)

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := Decode(path); err == nil {
			loaded = cfg
			return loaded
		}
	}

	loaded = &ConfigFile{
		Defaults: fallbackDefaults,
		Speech:   fallbackSpeech,
	}
	return loaded
}

// Decode parses a single config file on top of the fallback defaults.
func Decode(path string) (*ConfigFile, error) {
	cfg := ConfigFile{
		Defaults: fallbackDefaults,
		Speech:   fallbackSpeech,
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}

func searchPaths() []string {
	// Try to find config.toml by walking up from executable or cwd
	paths := []string{
		"config.toml",
		"../config.toml",
		"../../config.toml",
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "..", "config.toml"),
		)
	}
	return paths
}

// Convenience accessors for the standalone tools, which take their flag
// defaults from config.toml. The main CLI reads the same keys through viper.
var (
	DefaultVoice     = func() string { return Load().Defaults.Voice }
	DefaultOutputDir = func() string { return Load().Defaults.OutputDir }
	DefaultDatabase  = func() string { return Load().Defaults.Database }
)

// MaxWorkers is the cap for parallel workers
const MaxWorkers = 8

// Workers resolves a requested worker count: zero or less means one per
// job up to MaxWorkers.
func Workers(requested, jobs int) int {
	n := requested
	if n <= 0 {
		n = jobs
	}
	if n > MaxWorkers {
		n = MaxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}
