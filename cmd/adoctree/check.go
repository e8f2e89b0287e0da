package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolfedh/adoctree/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check the include tree for broken references",
	Long:  `Resolves the include tree and reports nonexistent targets, forbidden path characters, and direct self-inclusions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd, args); err != nil {
			fmt.Printf("Check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Include tree is clean! ✅")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := listingOptions(cmd, args)
	if err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	return cli.RunCheck(cli.CheckOptions{
		Arg:           arg,
		ShowCommented: opts.ShowCommented,
		Debug:         opts.Debug,
		Config:        opts.Config,
	})
}
