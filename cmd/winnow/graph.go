package main

import (
	"github.com/aretw0/winnow/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [script]",
	Short: "Export the script as a Mermaid flowchart",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		return cli.Graph(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
