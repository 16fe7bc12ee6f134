package main

import (
	"fmt"

	"github.com/aretw0/winnow/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [script]",
	Short: "Check a script for errors",
	Long:  `Parses the script and reports unreachable nodes, unanswerable questions and nodes with no way out.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		strict, _ := cmd.Flags().GetBool("strict")

		if err := cli.Validate(cmd.Context(), cfg, strict, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")
}
