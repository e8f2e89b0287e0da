package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/internal/cli"
	"github.com/rolfedh/adoctree/internal/presentation/graph"
	"github.com/rolfedh/adoctree/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Export the include tree visualization",
	Long:  `Resolves the include tree and outputs a Mermaid diagram (graph TD) representing its structure.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := listingOptions(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		doc, err := cli.ResolveStartingDocument(arg, opts.Config)
		if err != nil {
			fmt.Printf("Error locating document: %v\n", err)
			os.Exit(1)
		}

		engine, err := adoctree.New(doc, adoctree.WithShowCommented(opts.ShowCommented))
		if err != nil {
			fmt.Printf("Error initializing adoctree: %v\n", err)
			os.Exit(1)
		}

		// Generate Mermaid graph
		output := graph.GenerateMermaid(engine.Resolve())

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
				fmt.Printf("Error writing %s: %v\n", outputPath, err)
				os.Exit(1)
			}
			return
		}

		preview, _ := cmd.Flags().GetBool("preview")
		if preview {
			render := tui.NewRenderer()
			pretty, err := render("```mermaid\n" + output + "```\n")
			if err != nil {
				fmt.Printf("Error rendering preview: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(pretty)
			return
		}

		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("output", "o", "", "Write the diagram to a file instead of stdout")
	graphCmd.Flags().Bool("preview", false, "Render the diagram as markdown in the terminal")
}
