package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdStat = &cobra.Command{
	Use:   "stat",
	Short: "Show hash table statistics after loading",
	Long: `
The "stat" command loads the places file and prints how the places are spread
over the hash table buckets.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStat(cmd, statOptions.Distribution)
	},
}

// StatOptions bundles all options for the stat command.
type StatOptions struct {
	Distribution bool
}

var statOptions StatOptions

func init() {
	cmdRoot.AddCommand(cmdStat)

	f := cmdStat.Flags()
	f.BoolVar(&statOptions.Distribution, "distribution", false, "also print the number of places in every bucket")
}

func runStat(cmd *cobra.Command, distribution bool) error {
	lt, err := openTable(cmd, nil)
	if err != nil {
		return err
	}

	stat := lt.table.Stat(distribution)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Places loaded:   %d\n", lt.result.Loaded)
	fmt.Fprintf(out, "Lines skipped:   %d\n", lt.result.Skipped)
	fmt.Fprintf(out, "Records:         %d\n", stat.Records)
	fmt.Fprintf(out, "Capacity:        %d\n", stat.Capacity)
	fmt.Fprintf(out, "Load factor:     %.4f\n", stat.LoadFactor)
	fmt.Fprintf(out, "Resizes:         %d\n", stat.Resizes)
	fmt.Fprintf(out, "Empty buckets:   %d\n", stat.EmptyBuckets)
	fmt.Fprintf(out, "Longest chain:   %d\n", stat.LongestChain)
	for i, n := range stat.BucketDistribution {
		fmt.Fprintf(out, "%8d %d\n", i, n)
	}

	return nil
}
