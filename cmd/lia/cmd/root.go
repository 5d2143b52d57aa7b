// Package cmd implements the lia CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/lifeinvader-ads/internal/api/client"
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "lia",
		Short: "CLI client for the LifeInvader ads service",
		Long: "lia is a command-line client for the lifeinvader-ads API.\n" +
			"It formats ads, resolves official names and prices, searches the\n" +
			"template catalog and records corrections from the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initConfig(c, cfgFile)
		},
	}

	root.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.lia.yaml)")
	root.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	root.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", root.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", root.PersistentFlags().Lookup("output")))

	root.AddCommand(
		normalizeCmd(),
		similarityCmd(),
		matchCmd(),
		canonicalCmd(),
		categoryCmd(),
		priceCmd(),
		formatCmd(),
		searchCmd(),
		suggestCmd(),
		categoriesCmd(),
		catalogCmd(),
		feedbackCmd(),
	)

	return root
}

func initConfig(c *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lia")
	}

	viper.SetEnvPrefix("LIA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(c.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
	return nil
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
