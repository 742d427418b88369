// Package cli implements the regionprof command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "regionprof",
	Short:   "Live per-goroutine timing of named code regions",
	Version: version,
	Long: `Regionprof measures the cumulative time goroutines spend inside named
code regions and reports it live, one line per record per reporting
interval, with no separate tracing pipeline. The run subcommand drives
a synthetic workload through the profiler and prints an end-of-run
summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
}
