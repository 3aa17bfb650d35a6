/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package journal keeps a local history of wake cycles in SQLite. It is a
// debugging aid: every write is best effort and a journal failure never
// blocks the cycle.
package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// CycleEntry is one completed wake cycle.
type CycleEntry struct {
	At           time.Time
	Moisture     int
	PumpSeconds  int
	TimedOut     bool
	Pushed       bool
	SleepSeconds int
}

// Open opens or creates the journal database
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal")
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to migrate journal")
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cycles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at DATETIME NOT NULL,
		moisture INTEGER NOT NULL,
		pump_seconds INTEGER NOT NULL,
		timed_out INTEGER NOT NULL,
		pushed INTEGER NOT NULL,
		sleep_seconds INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_cycles_at ON cycles(at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// RecordCycle appends one cycle entry.
func (db *DB) RecordCycle(e CycleEntry) error {
	_, err := db.conn.Exec(
		`INSERT INTO cycles (at, moisture, pump_seconds, timed_out, pushed, sleep_seconds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.At, e.Moisture, e.PumpSeconds, e.TimedOut, e.Pushed, e.SleepSeconds)

	return err
}

// Recent returns the latest n entries, newest first.
func (db *DB) Recent(n int) ([]CycleEntry, error) {
	rows, err := db.conn.Query(
		`SELECT at, moisture, pump_seconds, timed_out, pushed, sleep_seconds
		 FROM cycles ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []CycleEntry
	for rows.Next() {
		var e CycleEntry
		if err := rows.Scan(&e.At, &e.Moisture, &e.PumpSeconds, &e.TimedOut, &e.Pushed, &e.SleepSeconds); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
