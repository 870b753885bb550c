package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// SQLite is a Store over the settings table, one row per key. Values are JSON
// encoded. The schema comes from the db package migrations.
type SQLite struct {
	staged
	db         *sql.DB
	collection string
}

// OpenSQLite loads every key of collection from db.
func OpenSQLite(ctx context.Context, db *sql.DB, collection string) (*SQLite, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, value FROM settings WHERE collection = ?`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	committed := map[string]any{}
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		v, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode setting %s: %w", name, err)
		}
		committed[name] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := &SQLite{db: db, collection: collection}
	s.load(committed)
	log.Trace().Str("collection", collection).Int("keys", len(committed)).Msg("loaded settings from database")
	return s, nil
}

// Save writes the staged keys in a single transaction. Absent keys are deleted.
func (s *SQLite) Save(ctx context.Context) error {
	return s.commit(func(_, changes map[string]any) (err error) {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() {
			if err != nil {
				if rbErr := tx.Rollback(); rbErr != nil {
					log.Error().Err(rbErr).Msg("failed to roll back settings transaction")
				}
			}
		}()

		upsert, err := tx.PrepareContext(ctx,
			`INSERT INTO settings (collection, name, value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (collection, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer upsert.Close()

		for name, v := range changes {
			if v == nil {
				if _, err = tx.ExecContext(ctx, `DELETE FROM settings WHERE collection = ? AND name = ?`, s.collection, name); err != nil {
					return fmt.Errorf("failed to delete setting %s: %w", name, err)
				}
				continue
			}
			var encoded []byte
			if encoded, err = json.Marshal(v); err != nil {
				return fmt.Errorf("failed to encode setting %s: %w", name, err)
			}
			if _, err = upsert.ExecContext(ctx, s.collection, name, string(encoded)); err != nil {
				return fmt.Errorf("failed to write setting %s: %w", name, err)
			}
		}
		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit settings: %w", err)
		}
		log.Debug().Str("collection", s.collection).Int("changed", len(changes)).Msg("saved settings to database")
		return nil
	})
}

func decodeValue(raw string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
