package main

import (
	"fmt"

	"github.com/aretw0/winnow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of winnow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "winnow version %s\n", winnow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
