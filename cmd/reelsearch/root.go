package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// cli holds the persistent flags shared by every command.
type cli struct {
	serverURL  string
	jsonOutput bool
}

func (c *cli) client() *Client {
	return NewClient(c.serverURL)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "reelsearch",
		Short: "CLI client for the reelsearch movie search service",
		Long: `reelsearch - CLI client for the reelsearch movie search service

Search movies across catalog and ratings providers, record feedback
and inspect learned preference weights.

Run 'reelsearchd' to start the server daemon.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.serverURL, "server", "http://localhost:8484", "Server URL")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")

	root.Version = version
	root.SetVersionTemplate("reelsearch {{.Version}}\n")

	root.AddCommand(
		newSearchCmd(c),
		newFeedbackCmd(c),
		newWeightsCmd(c),
		newCacheCmd(c),
		newStatusCmd(c),
		newInitCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
