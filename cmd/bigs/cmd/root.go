// Package cmd provides the CLI commands for bigs.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bigs/internal/logging"
)

var verbose bool

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "bigs",
	Short: "The BIpartite Graph Sampler",
	Long: `bigs samples uniformly-random simple regular bipartite graphs.

A graph is a set of variables and constraints (SAT naming) connected by
edges; every variable shares one fixed degree and every constraint another.
Typical uses are SAT-instance generation and LDPC parity-check matrices.

Examples:
  bigs sample -n 10 -m 6 -v 3 -c 5
  bigs sample -v 3 -c 6 --scaling 50 --rngseed 42 --json
  bigs sample -n 600 -m 300 -v 3 -c 6 -o graph.json`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	defer logging.Sync()

	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { logging.Init(verbose) })

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bigs version 1.1.0")
	},
}
