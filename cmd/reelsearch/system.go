package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelsearch/internal/config"
)

func newCacheCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the server result cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear all cached search results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client().ClearCache(); err != nil {
				return fmt.Errorf("cache clear failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	})
	return cmd
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.client().Health()
			if err != nil {
				return fmt.Errorf("status check failed: %w", err)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), h)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server:   %s\n", c.serverURL)
			fmt.Fprintf(out, "Status:   %s\n", h.Status)
			fmt.Fprintf(out, "Version:  %s\n", h.Version)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long: `Write the default configuration file.

Without a path the file is written to the XDG config location
($XDG_CONFIG_HOME/reelsearch/config.toml).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			if force {
				if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			if err := config.WriteDefault(path); err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Set TMDB_API_KEY (and optionally OMDB_API_KEY) before starting reelsearchd.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
