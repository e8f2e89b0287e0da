package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "adoctree [glob ...]",
	Short: "adoctree prints the include tree of AsciiDoc documents",
	Long: `adoctree recursively follows include:: directives and prints the
resulting tree with inline status tags for commented, self-recursive,
invalid, and missing targets.`,
	// Positional arguments are glob patterns, not subcommands.
	Args: cobra.ArbitraryArgs,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default .adoctree.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("show-commented", false, "Analyze and render includes that are commented out")
	rootCmd.PersistentFlags().Bool("color", term.IsTerminal(int(os.Stdout.Fd())), "Colorize status tags")
}
