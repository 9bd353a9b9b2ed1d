package qlearning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dominoes/mdp"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// ErrCorruptStore is returned when a stored key no longer matches its hash.
var ErrCorruptStore = errors.New("corrupt q-table store")

const schema = `CREATE TABLE IF NOT EXISTS q_values (
	state_hash INTEGER NOT NULL,
	state  TEXT NOT NULL,
	action TEXT NOT NULL,
	value  REAL NOT NULL,
	visits INTEGER NOT NULL,
	PRIMARY KEY (state, action)
)`

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open q-table store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create q-table schema: %w", err)
	}
	return db, nil
}

// Save writes every entry of table to the SQLite file at path, replacing
// previously stored values of the same pairs.
func Save(ctx context.Context, path string, table *Table) error {
	db, err := open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin q-table write: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO q_values (state_hash, state, action, value, visits) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare q-table write: %w", err)
	}
	defer stmt.Close()

	entries := table.Entries()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, int64(e.State.Hash()), e.State.String(), e.Action.String(), e.Value, e.Visits); err != nil {
			return fmt.Errorf("failed to write q-value %s/%s: %w", e.State, e.Action, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit q-table: %w", err)
	}
	log.Debug().Int("entries", len(entries)).Str("path", path).Msg("stored q-table")
	return nil
}

// Load reads a table stored by Save. A missing file yields an empty table.
// Every row's key is checked against its stored hash.
func Load(ctx context.Context, path string) (*Table, error) {
	db, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT state_hash, state, action, value, visits FROM q_values`)
	if err != nil {
		return nil, fmt.Errorf("failed to read q-table: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var hash int64
		var state, action string
		var e Entry
		if err := rows.Scan(&hash, &state, &action, &e.Value, &e.Visits); err != nil {
			return nil, fmt.Errorf("failed to scan q-value: %w", err)
		}
		if e.State, err = mdp.ParseKey(state); err != nil {
			return nil, err
		}
		if uint64(hash) != e.State.Hash() {
			return nil, fmt.Errorf("%w: key %s does not match hash %x", ErrCorruptStore, state, uint64(hash))
		}
		if e.Action, err = mdp.ParseMove(action); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read q-table: %w", err)
	}

	table := NewTable()
	table.load(entries)
	log.Debug().Int("entries", len(entries)).Str("path", path).Msg("loaded q-table")
	return table, nil
}
