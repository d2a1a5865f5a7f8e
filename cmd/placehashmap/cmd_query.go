package main

import (
	"fmt"

	"github.com/gostonefire/placehashmap/internal/shell"
	"github.com/spf13/cobra"
)

var cmdQuery = &cobra.Command{
	Use:   "query [places-file [states-file]]",
	Short: "Start the interactive query shell",
	Long: `
The "query" command loads the places file and reads commands from standard input:

  N placename          Find all states with this place name
  S placename state    Get detailed info for specific place
  Q                    Quit

Files given as arguments take precedence over --places and --states.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	Args:              cobra.MaximumNArgs(2),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args)
	},
}

func init() {
	cmdRoot.AddCommand(cmdQuery)
}

func runQuery(cmd *cobra.Command, args []string) error {
	lt, err := openTable(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully loaded %d places into hash table\n", lt.result.Loaded)

	return shell.New(lt.table, lt.states, out).Run(cmd.InOrStdin())
}
