package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Show the normalized forms of a text",
		Long: "Show the storage form (with synonym folding) and the search form\n" +
			"(without it) that the service uses for matching.",
		Example: `  lia normalize "Selling 24/7 Ammo Store!!"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Normalize(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Normalized:\t%s\n", resp.Normalized)
			tw.writef("Search:\t%s\n", resp.Search)
			return tw.finish()
		},
	}
}

func similarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "similarity <a> <b>",
		Short:   "Score how similar two strings are",
		Example: `  lia similarity "sultan rs" "Karin Sultan RS"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := newClient().Similarity(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]float64{"similarity": score})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)
			return err
		},
	}
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <input> <candidate>...",
		Short: "Find the best matching candidate for an input",
		Example: `  lia match sultan "Karin Sultan" "Karin Sultan RS" "Pegassi Zentorno"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Match(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if !resp.Found {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No match.")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%.4f)\n", resp.Match, resp.Similarity)
			return err
		},
	}
}

func canonicalCmd() *cobra.Command {
	var (
		kind           string
		candidatesFile string
	)

	cmd := &cobra.Command{
		Use:   "canonical <text>",
		Short: "Extract the official vehicle or brand name from a text",
		Example: `  lia canonical "selling my sultan rs full upgrades"
  lia canonical "blue gucci hoodie" --kind clothing
  lia canonical "need a zentorno" --candidates-file vehicles.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var candidates string
			if candidatesFile != "" {
				data, err := os.ReadFile(candidatesFile) //nolint:gosec // path from CLI flag
				if err != nil {
					return fmt.Errorf("reading candidates file: %w", err)
				}
				candidates = string(data)
			}

			resp, err := newClient().Canonical(cmd.Context(), strings.Join(args, " "), kind, candidates)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if !resp.Found {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No official name found.")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Name)
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "vehicle", "built-in name list (vehicle, clothing)")
	cmd.Flags().StringVar(&candidatesFile, "candidates-file", "", "newline-delimited candidate names; overrides --kind")

	return cmd
}

func categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "category <text>",
		Short:   "Classify an ad",
		Example: `  lia category "Selling bar in Vespucci"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Category(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printCategoryDetail(cmd.OutOrStdout(), resp)
		},
	}
}

func priceCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "price [raw]",
		Short: "Format a price the way ads display it",
		Long: "Format a raw price such as 4500000 or 250k. With --text the price is\n" +
			"extracted from free text instead.",
		Example: `  lia price 4500000
  lia price 250k
  lia price --text "selling my sultan for 4.5m obo"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			}
			if raw == "" && text == "" {
				return errors.New("a raw price or --text is required")
			}

			resp, err := newClient().Price(cmd.Context(), raw, text)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Formatted)
			return err
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "free text to extract a price from")

	return cmd
}

func formatCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "format <text>",
		Short: "Rewrite an ad to the posting policy",
		Example: `  lia format "selling my sultan rs full upgrades 250k"
  lia format "hiring mechanics" --category services`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Format(cmd.Context(), strings.Join(args, " "), domain.Category(category))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Ad:\t%s\n", resp.Text)
			tw.writef("Category:\t%s\n", resp.DisplayCategory)
			tw.writef("Source:\t%s\n", resp.Source)
			return tw.finish()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category hint, e.g. auto or services")

	return cmd
}
