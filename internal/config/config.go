// Package config loads the placehashmap configuration from an optional YAML file with environment variable
// overrides. Command line flags are applied on top by the caller.
package config

import (
	"github.com/gostonefire/placehashmap/internal/conf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
)

// Hash algorithm names accepted in HashAlgorithm
const (
	HashPolynomial = "polynomial"
	HashXX         = "xxhash"
)

// Config - Top level configuration.
//   - PlacesFile is the fixed width places file to load
//   - StatesFile is the states file used to render full state names, empty means built-in US states
//   - InitialCapacity is the number of buckets the hash table starts with
//   - HashAlgorithm selects the bucket selection algorithm, "polynomial" or "xxhash"
type Config struct {
	PlacesFile      string        `yaml:"placesFile"`
	StatesFile      string        `yaml:"statesFile"`
	InitialCapacity int64         `yaml:"initialCapacity"`
	HashAlgorithm   string        `yaml:"hashAlgorithm"`
	Logging         LoggingConfig `yaml:"logging"`
}

// LoggingConfig - Log level (debug, info, warn, error) and format (text, json)
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load - Reads a YAML config file (if a path is given) and applies environment variable overrides.
// Missing values keep their defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()
	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			err = errors.Wrapf(err, "reading config file %s", path)
			return
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			err = errors.Wrapf(err, "parsing config file %s", path)
			return
		}
	}

	if err = applyEnvOverrides(cfg); err != nil {
		return
	}

	return
}

// Default - Returns a Config with defaults, no files set
func Default() *Config {
	return &Config{
		InitialCapacity: conf.DefaultCapacity,
		HashAlgorithm:   HashPolynomial,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate - Checks that the configuration can be used to load and query places
func (C *Config) Validate() error {
	if C.PlacesFile == "" {
		return errors.New("no places file given")
	}
	if C.InitialCapacity < 0 {
		return errors.Errorf("initial capacity must not be negative, got %d", C.InitialCapacity)
	}
	switch C.HashAlgorithm {
	case HashPolynomial, HashXX:
	default:
		return errors.Errorf("unknown hash algorithm %q, use %q or %q", C.HashAlgorithm, HashPolynomial, HashXX)
	}

	return nil
}

// applyEnvOverrides - Reads PLACEHASHMAP_* environment variables and overrides the corresponding fields
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PLACEHASHMAP_PLACES_FILE"); v != "" {
		cfg.PlacesFile = v
	}
	if v := os.Getenv("PLACEHASHMAP_STATES_FILE"); v != "" {
		cfg.StatesFile = v
	}
	if v := os.Getenv("PLACEHASHMAP_INITIAL_CAPACITY"); v != "" {
		capacity, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parsing PLACEHASHMAP_INITIAL_CAPACITY")
		}
		cfg.InitialCapacity = capacity
	}
	if v := os.Getenv("PLACEHASHMAP_HASH_ALGORITHM"); v != "" {
		cfg.HashAlgorithm = v
	}
	if v := os.Getenv("PLACEHASHMAP_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PLACEHASHMAP_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	return nil
}
