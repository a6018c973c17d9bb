// Package main provides the entry point for the scanbench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for scanbench.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scanbench",
		Short: "Benchmark report generator for network scanners",
		Long: `scanbench parses the profiling artifacts captured during network-scanner
benchmark runs (GNU time output and compact metric digests), merges them with
the run manifest, and renders comparison reports: a Markdown table, a
plain-text report, grouped bar charts, and an architecture diagram.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
