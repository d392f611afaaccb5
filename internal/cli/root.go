// Package cli wires the puzzle days into cobra subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd returns the aoc command with every day registered.
func NewRootCmd() *cobra.Command {
	ro := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solutions",
		Long: `Advent of Code 2022 solutions, one subcommand per day.

Examples:
  aoc day17 -i 17.input
  aoc day17 --sample
  aoc day17 -i 17.input --rocks 5000 --draw 20`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&ro.configPath, "config", "", "YAML config file (default $AOC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newDay17Cmd(ro))
	return rootCmd
}

// Execute runs the aoc command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
