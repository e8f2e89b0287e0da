package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolfedh/adoctree/internal/cli"
	"github.com/rolfedh/adoctree/internal/config"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [glob ...]",
	Short: "Print the annotated include tree",
	Long: `Expands each argument as a filesystem glob and prints one include tree
per match. Directories are listed from their root document; without
arguments the current directory's root document is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := listingOptions(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err := cli.RunListing(os.Stdout, opts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)

	// Listing is what adoctree does when no subcommand is given.
	rootCmd.Run = treeCmd.Run
}

// listingOptions collects the flags shared by the document-reading commands.
func listingOptions(cmd *cobra.Command, args []string) (cli.ListingOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	color, _ := cmd.Flags().GetBool("color")

	cfg, err := config.Load(configPath)
	if err != nil {
		return cli.ListingOptions{}, err
	}

	showCommented := cfg.ShowCommented
	if cmd.Flags().Changed("show-commented") {
		showCommented, _ = cmd.Flags().GetBool("show-commented")
	}

	return cli.ListingOptions{
		Args:          args,
		ShowCommented: showCommented,
		Color:         color,
		Debug:         debug,
		Config:        cfg,
	}, nil
}
