// Package notify tracks which activity-feed entries the admin has read.
// The API does not carry read state, so it lives in a local sqlite file
// under the config dir and survives restarts.
package notify

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// Store is the read-state database. Safe for use from one process; the
// busy timeout covers a second jyadmin instance on the same machine.
type Store struct {
	db *sql.DB
}

// Open creates or opens seen.sqlite inside dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "seen.sqlite"))
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seen_activity (
		activity_id TEXT PRIMARY KEY,
		seen_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// MarkSeen records the given activities as read. Already-seen ids are
// a no-op.
func (s *Store) MarkSeen(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO seen_activity (activity_id, seen_at_unixms) VALUES (?, ?)`,
			id, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Seen reports whether one activity has been read.
func (s *Store) Seen(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM seen_activity WHERE activity_id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UnreadCount counts the activities in the feed that have not been read.
func (s *Store) UnreadCount(ctx context.Context, activities []model.Activity) (int, error) {
	unread := 0
	for _, a := range activities {
		seen, err := s.Seen(ctx, a.ID)
		if err != nil {
			return 0, err
		}
		if !seen {
			unread++
		}
	}
	return unread, nil
}

// Prune drops read-state rows older than the retention window so the file
// does not grow with the feed forever.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM seen_activity WHERE seen_at_unixms < ?`, cutoff)
	return err
}
