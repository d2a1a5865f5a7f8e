package main

import (
	"os"

	"github.com/gostonefire/placehashmap"
	"github.com/gostonefire/placehashmap/hashfunc"
	"github.com/gostonefire/placehashmap/internal/config"
	"github.com/gostonefire/placehashmap/internal/loader"
	"github.com/gostonefire/placehashmap/internal/logging"
	"github.com/gostonefire/placehashmap/internal/states"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadedTable bundles what the commands work on once the files are loaded.
type loadedTable struct {
	table  *placehashmap.HashTable
	states *states.Table
	result loader.Result
}

// resolveConfig merges the config file, environment, flags and positional file arguments, in that order.
func resolveConfig(cmd *cobra.Command, files []string) (*config.Config, error) {
	cfg, err := config.Load(globalOptions.ConfigFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("places") {
		cfg.PlacesFile = globalOptions.PlacesFile
	}
	if flags.Changed("states") {
		cfg.StatesFile = globalOptions.StatesFile
	}
	if flags.Changed("capacity") {
		cfg.InitialCapacity = globalOptions.Capacity
	}
	if flags.Changed("hash") {
		cfg.HashAlgorithm = globalOptions.HashAlgorithm
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = globalOptions.LogLevel
	}

	switch len(files) {
	case 0:
	case 1:
		cfg.PlacesFile = files[0]
	default:
		cfg.PlacesFile = files[0]
		cfg.StatesFile = files[1]
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// loadTable creates the hash table and fills it from the configured places file.
func loadTable(cfg *config.Config) (*loadedTable, error) {
	var ha hashfunc.HashAlgorithm
	switch cfg.HashAlgorithm {
	case config.HashXX:
		ha = placehashmap.NewXXHashAlgorithm(cfg.InitialCapacity)
	default:
		ha = placehashmap.NewPolynomialHashAlgorithm(cfg.InitialCapacity)
	}

	ht, info, err := placehashmap.NewHashTable(cfg.InitialCapacity, ha)
	if err != nil {
		return nil, errors.Wrap(err, "creating hash table")
	}
	log.WithFields(log.Fields{"capacity": info.Capacity, "internalAlgorithm": info.InternalAlgorithm}).Debug("hash table created")

	stateTable, err := states.Load(cfg.StatesFile)
	if err != nil {
		return nil, err
	}

	result, err := loader.LoadPlacesFile(cfg.PlacesFile, ht)
	if err != nil {
		return nil, err
	}

	return &loadedTable{table: ht, states: stateTable, result: result}, nil
}

// openTable resolves the configuration and loads the table in one go.
func openTable(cmd *cobra.Command, files []string) (*loadedTable, error) {
	cfg, err := resolveConfig(cmd, files)
	if err != nil {
		return nil, err
	}

	return loadTable(cfg)
}
