// Package cmd implements the commands of the lifeinvader-ads server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lifeinvader-ads",
	Short: "Format and search LifeInvader ads",
	Long: "An API service that rewrites player ads to the LifeInvader posting policy, " +
		"resolves official vehicle and brand names, and serves the ad template catalog.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
