package main

import (
	"github.com/gostonefire/placehashmap/internal/shell"
	"github.com/spf13/cobra"
)

var cmdFind = &cobra.Command{
	Use:   "find NAME [STATE]",
	Short: "Look up a place once and exit",
	Long: `
The "find" command loads the places file and answers a single lookup. With a
name only it lists the states having a place with that name, with a name and a
state it shows the details of that place.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
A place that is not found is not an error.
`,
	Args:              cobra.RangeArgs(1, 2),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args)
	},
}

func init() {
	cmdRoot.AddCommand(cmdFind)
}

func runFind(cmd *cobra.Command, args []string) error {
	lt, err := openTable(cmd, nil)
	if err != nil {
		return err
	}

	s := shell.New(lt.table, lt.states, cmd.OutOrStdout())
	if len(args) == 1 {
		s.ListByName(args[0])
	} else {
		s.ShowPlace(args[0], args[1])
	}

	return nil
}
