package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolfedh/adoctree"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adoctree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adoctree version %s\n", strings.TrimSpace(adoctree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
