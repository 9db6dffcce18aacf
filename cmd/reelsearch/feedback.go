package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelsearch/internal/feedback"
)

func newFeedbackCmd(c *cli) *cobra.Command {
	var (
		rec     feedback.Record
		factors []string
	)
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record feedback on a search",
		Long: `Record feedback on a search. Each --factor is a category:value pair
(genre, actor, director, keyword or era) whose weight is nudged up for
positive feedback and down otherwise.

Examples:
  reelsearch feedback --user alice --factor genre:Crime --factor "actor:Al Pacino"
  reelsearch feedback --user alice --rating negative --factor era:1980s --context "old thrillers"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec.MatchFactors = factors
			msg, err := c.client().SendFeedback(&rec)
			if err != nil {
				return fmt.Errorf("feedback failed: %w", err)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), messageResponse{Message: msg})
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&rec.UserID, "user", "", "User ID (required)")
	cmd.Flags().StringVar(&rec.Rating, "rating", "positive", "Rating: positive or negative")
	cmd.Flags().StringArrayVar(&factors, "factor", nil, "Match factor category:value (repeatable)")
	cmd.Flags().StringVar(&rec.SearchContext, "context", "", "Search that produced the results")
	cmd.Flags().StringVar(&rec.Note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newWeightsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "weights <userId>",
		Short: "Show a user's learned preference weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.client().Weights(args[0])
			if err != nil {
				return fmt.Errorf("weights failed: %w", err)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), w)
			}
			printWeights(cmd.OutOrStdout(), args[0], w)
			return nil
		},
	}
}

func printWeights(out io.Writer, userID string, w *feedback.Weights) {
	fmt.Fprintf(out, "Weights for %s:\n", userID)
	for _, category := range feedback.Categories {
		values := w.Category(category)
		fmt.Fprintf(out, "\n  %s\n", strings.ToUpper(category))
		if len(values) == 0 {
			fmt.Fprintln(out, "    (none)")
			continue
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "    %-30s %.2f\n", k, values[k])
		}
	}
}
