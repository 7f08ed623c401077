// Package cache persists fetched dataset snapshots in a local sqlite
// database, keyed by source identity. Invalidation is explicit (or TTL-based
// when configured); the filter and summary layers never touch the cache.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Snapshot is one cached fetch result.
type Snapshot struct {
	ID          string
	Source      string
	ContentHash string
	Payload     []byte
	FetchedAt   time.Time
}

type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens the cache database at path. A ttl of zero means
// snapshots never expire on their own and are replaced only explicitly.
func Open(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir cache dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached snapshot for a source, or (nil, nil) on a miss or
// when the snapshot has outlived the configured TTL.
func (c *Cache) Get(ctx context.Context, source string) (*Snapshot, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT snapshot_id, content_hash, payload, fetched_at FROM snapshots WHERE source = ?`, source)
	s := Snapshot{Source: source}
	if err := row.Scan(&s.ID, &s.ContentHash, &s.Payload, &s.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if c.ttl > 0 && time.Since(s.FetchedAt) > c.ttl {
		return nil, nil
	}
	return &s, nil
}

// Put stores a payload for a source, replacing any previous snapshot.
func (c *Cache) Put(ctx context.Context, source string, payload []byte) (*Snapshot, error) {
	s := &Snapshot{
		ID:          uuid.NewString(),
		Source:      source,
		ContentHash: contentHash(payload),
		Payload:     payload,
		FetchedAt:   time.Now().UTC(),
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO snapshots (source, snapshot_id, content_hash, payload, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET
		   snapshot_id = excluded.snapshot_id,
		   content_hash = excluded.content_hash,
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at`,
		s.Source, s.ID, s.ContentHash, s.Payload, s.FetchedAt)
	if err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}
	return s, nil
}

// Invalidate drops the snapshot for a source, if any.
func (c *Cache) Invalidate(ctx context.Context, source string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM snapshots WHERE source = ?`, source); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
