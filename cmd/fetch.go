package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/voltlabs/emcplan-cli/internal/dataset"
	"github.com/voltlabs/emcplan-cli/internal/source"
)

var fetchRefresh bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the remote dataset into the snapshot cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		store := openCache(c.CachePath, c.CacheTTLHours)
		if store == nil {
			return fmt.Errorf("snapshot cache is not configured (set cache_path)")
		}
		defer store.Close()

		ctx := cmd.Context()
		if fetchRefresh {
			if err := store.Invalidate(ctx, c.SourceURL); err != nil {
				return err
			}
		} else if snap, err := store.Get(ctx, c.SourceURL); err != nil {
			return err
		} else if snap != nil {
			fmt.Printf("✓ Snapshot %s is current (fetched %s, hash %.12s)\n",
				snap.ID, snap.FetchedAt.Format(time.RFC3339), snap.ContentHash)
			return nil
		}

		client := source.NewClient(
			time.Duration(c.HTTPTimeoutSec)*time.Second,
			c.RetryMaxAttempts,
			time.Duration(c.RetryBaseDelayMs)*time.Millisecond,
			time.Duration(c.RetryMaxDelayMs)*time.Millisecond,
		)
		payload, err := client.Fetch(ctx, c.SourceURL)
		if err != nil {
			return err
		}
		snap, err := store.Put(ctx, c.SourceURL, payload)
		if err != nil {
			return err
		}
		tbl, err := dataset.ReadCSVBytes(payload, 0)
		if err != nil {
			return fmt.Errorf("decode fetched csv: %w", err)
		}
		fmt.Printf("✓ Cached snapshot %s: %d rows, %d columns (hash %.12s)\n",
			snap.ID, len(tbl.Rows), len(tbl.Columns), snap.ContentHash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "invalidate the cached snapshot and refetch")
}
