package casefile

import (
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/sqlite"
	"log/slog"
)

// historyKey is the single key under which the case history lives. No other
// keys are part of the store's contract.
const historyKey = "case_history"

// DefaultMaxBytes caps the serialized history at 5 MiB.
const DefaultMaxBytes int64 = 5 << 20

// SQLiteRecordStore persists the keyed record in the keyed_records table.
//
// maxBytes bounds the serialized history size. Zero means unbounded.
type SQLiteRecordStore struct {
	readWrite *sqlx.DB
	readOnly  *sqlx.DB
	maxBytes  int64
}

func NewSQLiteRecordStore(db *sqlite.Database, maxBytes int64) *SQLiteRecordStore {
	return &SQLiteRecordStore{
		readWrite: sqlx.NewDb(db.ReadWrite, "sqlite3"),
		readOnly:  sqlx.NewDb(db.ReadOnly, "sqlite3"),
		maxBytes:  maxBytes,
	}
}

func (s *SQLiteRecordStore) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.readOnly.GetContext(ctx, &value,
		`SELECT value FROM keyed_records WHERE key = ?`, historyKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read keyed record", slog.String("key", historyKey))
	}
	return value, nil
}

func (s *SQLiteRecordStore) Save(ctx context.Context, data []byte) error {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return errors.Wrap(ErrCapacityExceeded, "serialized history too large",
			slog.Int("size", len(data)), slog.Int64("max_bytes", s.maxBytes))
	}
	// A single upsert statement: the record is either fully replaced or
	// left unchanged.
	_, err := s.readWrite.ExecContext(ctx,
		`INSERT INTO keyed_records (key, value, updated_at)
		 VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		historyKey, data)
	if err != nil {
		return errors.Wrap(err, "write keyed record", slog.String("key", historyKey))
	}
	return nil
}
