package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// cmdRoot is the base command, without a subcommand it starts the interactive query shell.
var cmdRoot = &cobra.Command{
	Use:   "placehashmap [places-file [states-file]]",
	Short: "Look up named places by name and state",
	Long: `
placehashmap loads a fixed width file of named places into an in-memory hash
table and answers lookups by place name, or by place name and state.

Without a subcommand the interactive query shell is started, see "query".
`,
	Version:           version,
	Args:              cobra.MaximumNArgs(2),
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args)
	},
}

// GlobalOptions holds all global options for placehashmap.
type GlobalOptions struct {
	ConfigFile    string
	PlacesFile    string
	StatesFile    string
	Capacity      int64
	HashAlgorithm string
	LogLevel      string
}

var globalOptions GlobalOptions

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVarP(&globalOptions.ConfigFile, "config", "c", "", "YAML configuration `file`")
	f.StringVar(&globalOptions.PlacesFile, "places", "", "fixed width places `file`")
	f.StringVar(&globalOptions.StatesFile, "states", "", "states `file` (default built-in US states)")
	f.Int64Var(&globalOptions.Capacity, "capacity", 0, "initial number of hash table buckets (default 101)")
	f.StringVar(&globalOptions.HashAlgorithm, "hash", "", "hash algorithm, polynomial or xxhash (default polynomial)")
	f.StringVar(&globalOptions.LogLevel, "log-level", "", "log level, debug, info, warn or error (default info)")
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
