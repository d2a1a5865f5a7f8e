package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults without file", func(t *testing.T) {
		// Execute
		cfg, err := Load("")

		// Check
		assert.NoError(t, err, "loads config")
		assert.Equal(t, Default(), cfg, "defaults")
		assert.Equal(t, int64(101), cfg.InitialCapacity, "default capacity")
		assert.Equal(t, HashPolynomial, cfg.HashAlgorithm, "default algorithm")
		assert.Empty(t, cfg.PlacesFile, "no places file")
		assert.Empty(t, cfg.StatesFile, "no states file")
	})

	t.Run("reads YAML file", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "placehashmap.yaml")
		data := []byte("placesFile: /data/named-places.txt\nstatesFile: /data/states.txt\ninitialCapacity: 211\nhashAlgorithm: xxhash\nlogging:\n  level: debug\n")
		assert.NoError(t, os.WriteFile(path, data, 0644), "writes config")

		// Execute
		cfg, err := Load(path)

		// Check
		assert.NoError(t, err, "loads config")
		assert.Equal(t, "/data/named-places.txt", cfg.PlacesFile, "places file")
		assert.Equal(t, "/data/states.txt", cfg.StatesFile, "states file")
		assert.Equal(t, int64(211), cfg.InitialCapacity, "capacity")
		assert.Equal(t, HashXX, cfg.HashAlgorithm, "algorithm")
		assert.Equal(t, "debug", cfg.Logging.Level, "level")
		assert.Equal(t, "text", cfg.Logging.Format, "default format kept")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "placehashmap.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("placesFile: a.txt\n"), 0644), "writes config")
		t.Setenv("PLACEHASHMAP_PLACES_FILE", "b.txt")
		t.Setenv("PLACEHASHMAP_INITIAL_CAPACITY", "53")

		// Execute
		cfg, err := Load(path)

		// Check
		assert.NoError(t, err, "loads config")
		assert.Equal(t, "b.txt", cfg.PlacesFile, "overridden places file")
		assert.Equal(t, int64(53), cfg.InitialCapacity, "overridden capacity")
	})

	t.Run("error on bad capacity in environment", func(t *testing.T) {
		// Prepare
		t.Setenv("PLACEHASHMAP_INITIAL_CAPACITY", "many")

		// Execute
		_, err := Load("")

		// Check
		assert.Error(t, err, "bad capacity")
	})

	t.Run("error when file is missing", func(t *testing.T) {
		// Execute
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// Check
		assert.Error(t, err, "missing file")
	})

	t.Run("error when file is not YAML", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "bad.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("placesFile: [unclosed\n"), 0644), "writes config")

		// Execute
		_, err := Load(path)

		// Check
		assert.Error(t, err, "bad YAML")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts a complete config", func(t *testing.T) {
		// Prepare
		cfg := Default()
		cfg.PlacesFile = "named-places.txt"

		// Execute and Check
		assert.NoError(t, cfg.Validate(), "valid")
	})

	t.Run("rejects bad values", func(t *testing.T) {
		// Prepare
		noPlaces := Default()
		negative := Default()
		negative.PlacesFile = "named-places.txt"
		negative.InitialCapacity = -1
		unknownHash := Default()
		unknownHash.PlacesFile = "named-places.txt"
		unknownHash.HashAlgorithm = "md5"

		// Execute and Check
		assert.Error(t, noPlaces.Validate(), "no places file")
		assert.Error(t, negative.Validate(), "negative capacity")
		assert.Error(t, unknownHash.Validate(), "unknown algorithm")
	})
}
