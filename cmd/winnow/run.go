package main

import (
	"github.com/aretw0/winnow/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a dialog script interactively",
	Long:  `Runs the script (input.txt by default) reading one answer per line from Stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		jsonMode, _ := cmd.Flags().GetBool("json")
		markdown, _ := cmd.Flags().GetBool("markdown")
		debug, _ := cmd.Flags().GetBool("debug")
		trace, _ := cmd.Flags().GetString("trace")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Config:    cfg,
			JSON:      jsonMode,
			Markdown:  markdown,
			Debug:     debug,
			TracePath: trace,
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
			Err:       cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{runCmd, rootCmd} {
		c.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
		c.Flags().Bool("markdown", false, "Render prompts as Markdown")
		c.Flags().Bool("debug", false, "Enable debug logging on Stderr")
		c.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the session")
		c.Flags().String("trace", "", "Write the visited path as a Mermaid graph to this file")
	}

	// 'run' is the default when no command is provided.
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
