package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelsearch/internal/aggregator"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		page   int
		userID string
	)
	cmd := &cobra.Command{
		Use:   "search [flags] <query>...",
		Short: "Search movies",
		Long: `Search movies by title, person or keywords.

Examples:
  reelsearch search batman
  reelsearch search "heist movies with al pacino" --user alice
  reelsearch search latest christopher nolan --page 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			resp, err := c.client().Search(query, page, userID)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printSearchResults(cmd.OutOrStdout(), query, resp)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().StringVar(&userID, "user", "", "User ID for personalized scoring")
	return cmd
}

func printSearchResults(w io.Writer, query string, r *aggregator.Response) {
	if len(r.Search) == 0 {
		fmt.Fprintf(w, "No movies found for %q\n", query)
		return
	}

	fmt.Fprintf(w, "Found %d movies for %q (page %d of %d):\n\n", r.TotalResults, query, r.Page, r.TotalPages)
	fmt.Fprintf(w, "  # │ %-40s │ %4s │ %6s │ %5s\n", "TITLE", "YEAR", "RATING", "SCORE")
	fmt.Fprintln(w, "────┼──────────────────────────────────────────┼──────┼────────┼───────")

	offset := (r.Page - 1) * 10
	for i, m := range r.Search {
		fmt.Fprintf(w, " %2d │ %-40s │ %4s │ %6.1f │ %5d\n",
			offset+i+1, truncate(m.Title, 40), yearString(m.Year), m.VoteAverage, m.RecommendationScore)

		var details []string
		if len(m.Genres) > 0 {
			details = append(details, strings.Join(m.Genres, ", "))
		}
		if len(m.Directors) > 0 {
			details = append(details, "dir. "+strings.Join(m.Directors, ", "))
		}
		if m.Ratings != nil && m.Ratings.IMDBRating > 0 {
			details = append(details, fmt.Sprintf("IMDb %.1f", m.Ratings.IMDBRating))
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "    │ %s\n", strings.Join(details, "  ·  "))
		}
		if len(m.CastMatches) > 0 {
			fmt.Fprintf(w, "    │ matched: %s\n", strings.Join(m.CastMatches, ", "))
		}
	}

	if r.HasMore {
		fmt.Fprintf(w, "\nMore results: --page %d\n", r.Page+1)
	}
}

func yearString(y int) string {
	if y == 0 {
		return "----"
	}
	return fmt.Sprintf("%d", y)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
