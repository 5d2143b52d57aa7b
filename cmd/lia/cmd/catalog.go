package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/lifeinvader-ads/internal/engine"
)

func searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the ad template catalog",
		Long: "Filter the template catalog by name, description and type. Without a\n" +
			"query every template is listed.",
		Example: `  lia search sultan
  lia search "bar in vespucci" --limit 5
  lia search --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SearchCatalog(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Entries) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
				return err
			}
			if err := printCatalogTable(cmd.OutOrStdout(), resp.Entries); err != nil {
				return err
			}
			if resp.Total > len(resp.Entries) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d templates.\n", len(resp.Entries), resp.Total)
			}
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "maximum number of results (0 for all)")

	return cmd
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "suggest <partial>",
		Short:   "Complete a partial catalog query",
		Example: `  lia suggest "selling k"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newClient().Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"suggestion": s})
			}
			if s == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No suggestion.")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the official ad categories",
		Example: `  lia categories
  lia categories --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := newClient().Categories(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cats)
			}
			return printCategoriesTable(cmd.OutOrStdout(), cats)
		},
	}
}

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the ad template catalog",
	}

	catalogRoot.AddCommand(
		catalogImportCmd(),
		catalogReloadCmd(),
	)

	return catalogRoot
}

func catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog with templates from a YAML file",
		Long: "Upload every template in a YAML file as the whole catalog. The file\n" +
			"has the same layout as the server's seed file:\n\n" +
			"  templates:\n" +
			"    - name: Sultan\n" +
			"      description: Selling \"Karin Sultan\"\n" +
			"      type: Auto",
		Example: `  lia catalog import templates.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := engine.LoadSeedFile(args[0])
			if err != nil {
				return err
			}
			n, err := newClient().ReplaceCatalog(cmd.Context(), rows)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"entries": n})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d templates.\n", n)
			return err
		},
	}
}

func catalogReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Rebuild the server's catalog index from storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().ReloadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"entries": n})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Catalog reloaded: %d templates.\n", n)
			return err
		},
	}
}
