package main

import (
	"fmt"
	"os"

	"github.com/aretw0/winnow/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "winnow [script]",
	Short: "winnow runs line-oriented dialog scripts",
	Long: `winnow interprets a dialog script: it asks questions, offers numbered menus,
remembers the answers as $VARIABLES and ends with a farewell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default winnow.yaml, if present)")
	flags.String("redis-addr", "", "Read the script from this Redis server instead of a file")
	flags.String("redis-key", "", "Redis key holding the script")
}

// loadConfig merges defaults, the config file, WINNOW_* variables and finally flags.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if len(args) > 0 {
		cfg.Script = args[0]
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.Redis.Addr, _ = cmd.Flags().GetString("redis-addr")
	}
	if cmd.Flags().Changed("redis-key") {
		cfg.Redis.Key, _ = cmd.Flags().GetString("redis-key")
	}
	if f := cmd.Flags().Lookup("metrics-addr"); f != nil && f.Changed {
		cfg.MetricsAddr = f.Value.String()
	}
	return cfg, nil
}
