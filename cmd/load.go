package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/voltlabs/emcplan-cli/internal/cache"
	"github.com/voltlabs/emcplan-cli/internal/dataset"
	"github.com/voltlabs/emcplan-cli/internal/source"
)

// loadDataset resolves the requirements table. A non-empty input path wins
// over the remote source; otherwise the snapshot cache is consulted before
// fetching, unless refresh forces a refetch.
func loadDataset(ctx context.Context, input, sheet string, refresh bool) (*dataset.Table, error) {
	if input != "" {
		lower := strings.ToLower(input)
		if strings.HasSuffix(lower, ".xlsx") {
			return dataset.ReadXLSXFile(input, sheet)
		}
		return dataset.ReadCSVFile(input, 0)
	}
	payload, err := loadRemotePayload(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return dataset.ReadCSVBytes(payload, 0)
}

// loadRemotePayload returns the raw CSV bytes of the remote source, cached by
// source identity. Cache failures degrade to a direct fetch with a warning.
func loadRemotePayload(ctx context.Context, refresh bool) ([]byte, error) {
	c := effectiveConfig()
	store := openCache(c.CachePath, c.CacheTTLHours)
	if store != nil {
		defer store.Close()
		if !refresh {
			snap, err := store.Get(ctx, c.SourceURL)
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: cache read failed: %v\n", err)
			} else if snap != nil {
				return snap.Payload, nil
			}
		}
	}
	client := source.NewClient(
		time.Duration(c.HTTPTimeoutSec)*time.Second,
		c.RetryMaxAttempts,
		time.Duration(c.RetryBaseDelayMs)*time.Millisecond,
		time.Duration(c.RetryMaxDelayMs)*time.Millisecond,
	)
	payload, err := client.Fetch(ctx, c.SourceURL)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if _, err := store.Put(ctx, c.SourceURL, payload); err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Warning: cache write failed: %v\n", err)
		}
	}
	return payload, nil
}

// openCache opens the snapshot cache, or returns nil when caching is
// unavailable. A missing cache is never fatal.
func openCache(path string, ttlHours int) *cache.Cache {
	if path == "" {
		return nil
	}
	store, err := cache.Open(path, time.Duration(ttlHours)*time.Hour)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: cache unavailable: %v\n", err)
		return nil
	}
	return store
}
