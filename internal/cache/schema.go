package cache

// One snapshot per source identity. A refetch replaces the previous snapshot
// for that source; nothing expires implicitly unless a TTL is configured.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    source       TEXT PRIMARY KEY,
    snapshot_id  TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    payload      BLOB NOT NULL,
    fetched_at   TIMESTAMP NOT NULL
);
`
