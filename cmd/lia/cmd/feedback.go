package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/lifeinvader-ads/internal/api/client"
)

func feedbackCmd() *cobra.Command {
	feedbackRoot := &cobra.Command{
		Use:   "feedback",
		Short: "Record and browse ad corrections",
		Long: "Corrections teach the formatter: the most relevant ones are added to\n" +
			"the prompt for similar ads.",
	}

	feedbackRoot.AddCommand(
		feedbackAddCmd(),
		feedbackListCmd(),
		feedbackGetCmd(),
	)

	return feedbackRoot
}

func feedbackAddCmd() *cobra.Command {
	var req apiclient.FeedbackRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a correction",
		Example: `  lia feedback add --input "banshee cheap" \
    --correction 'Selling "Bravado Banshee". Price: Negotiable.'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.OriginalInput == "" || req.UserCorrection == "" {
				return errors.New("--input and --correction are required")
			}
			e, err := newClient().SubmitFeedback(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), e)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded correction %s (%s).\n", e.ID, e.Category)
			return err
		},
	}
	cmd.Flags().StringVar(&req.OriginalInput, "input", "", "ad text as the player wrote it")
	cmd.Flags().StringVar(&req.UserCorrection, "correction", "", "corrected ad text")
	cmd.Flags().StringVar(&req.AIResponse, "ai-response", "", "formatter output that was corrected")
	cmd.Flags().StringVar(&req.Category, "category", "", "category key; detected from the input when empty")

	return cmd
}

func feedbackListCmd() *cobra.Command {
	var (
		params apiclient.ListFeedbackParams
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List corrections, most recent first",
		Example: `  lia feedback list
  lia feedback list --category auto --since 24h
  lia feedback list --search sultan --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if since > 0 {
				params.Since = time.Now().Add(-since)
			}
			resp, err := newClient().ListFeedback(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Entries) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No corrections found.")
				return err
			}
			if err := printFeedbackTable(cmd.OutOrStdout(), resp.Entries); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d corrections.\n", len(resp.Entries), resp.Total)
			return err
		},
	}
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category key")
	cmd.Flags().StringVar(&params.AdType, "ad-type", "", "filter by ad type (selling, buying, hiring, ...)")
	cmd.Flags().StringVar(&params.FormatPattern, "pattern", "", "filter by format pattern")
	cmd.Flags().StringVar(&params.Search, "search", "", "case-insensitive text search")
	cmd.Flags().DurationVar(&since, "since", 0, "only corrections newer than this, e.g. 24h")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "maximum number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of results to skip")

	return cmd
}

func feedbackGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a correction",
		Example: `  lia feedback get 6f1c2f8e-7c1a-4f38-9a57-2f0d3c1f4b2a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newClient().GetFeedback(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), e)
			}
			return printFeedbackDetail(cmd.OutOrStdout(), e)
		},
	}
}
