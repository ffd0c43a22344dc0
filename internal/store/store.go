// Package store keeps training maxes in a small per-user SQLite database,
// so maxes survive between cycles without editing the YAML file by hand.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"liftday/internal/workout"
)

// Standard 5/3/1 cycle increments: lower-body lifts move twice as fast as
// the presses.
const (
	SquatDeadliftIncrement = 10
	PressIncrement         = 5
)

// DB is the training-max store. Safe for use from a single process only.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the store at dir/liftday.db, creating the
// schema if needed.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "liftday.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS training_maxes (
			lift       TEXT PRIMARY KEY,
			max        INTEGER NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS cycles (
			id          TEXT PRIMARY KEY,
			applied_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			lower_delta INTEGER NOT NULL,
			press_delta INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating store schema: %w", err)
		}
	}

	return &DB{db: db}, nil
}

// Set records (or replaces) the training max for a lift.
func (s *DB) Set(lift workout.Lift, max int) error {
	_, err := s.db.Exec(
		`INSERT INTO training_maxes (lift, max) VALUES (?, ?)
		 ON CONFLICT(lift) DO UPDATE SET max = excluded.max,
		                                 updated_at = CURRENT_TIMESTAMP`,
		string(lift), max,
	)
	if err != nil {
		return fmt.Errorf("storing training max for %s: %w", lift, err)
	}
	return nil
}

// Get returns the training max for a lift, or a
// *workout.MissingTrainingMaxError if none is stored.
func (s *DB) Get(lift workout.Lift) (int, error) {
	var max int
	err := s.db.QueryRow(
		`SELECT max FROM training_maxes WHERE lift = ?`, string(lift),
	).Scan(&max)
	if err == sql.ErrNoRows {
		return 0, &workout.MissingTrainingMaxError{Lift: lift}
	}
	if err != nil {
		return 0, fmt.Errorf("reading training max for %s: %w", lift, err)
	}
	return max, nil
}

// All returns every stored training max as an engine-ready table.
func (s *DB) All() (workout.TrainingMaxes, error) {
	rows, err := s.db.Query(`SELECT lift, max FROM training_maxes`)
	if err != nil {
		return nil, fmt.Errorf("reading training maxes: %w", err)
	}
	defer rows.Close()

	maxes := make(workout.TrainingMaxes)
	for rows.Next() {
		var name string
		var max int
		if err := rows.Scan(&name, &max); err != nil {
			return nil, fmt.Errorf("scanning training max row: %w", err)
		}
		lift, ok := workout.ParseLift(name)
		if !ok {
			return nil, fmt.Errorf("store holds unknown lift %q", name)
		}
		maxes[lift] = max
	}
	return maxes, rows.Err()
}

// NextCycle applies the standard 5/3/1 increments to whichever primary
// lifts are stored (+10 squat and deadlift, +5 bench press and overhead
// press), records the bump as a cycle row, and returns its id. Assistance
// lifts are left alone; their maxes are retested, not progressed.
func (s *DB) NextCycle() (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("starting cycle transaction: %w", err)
	}
	defer tx.Rollback()

	increments := map[workout.Lift]int{
		workout.Squat:         SquatDeadliftIncrement,
		workout.Deadlift:      SquatDeadliftIncrement,
		workout.BenchPress:    PressIncrement,
		workout.OverheadPress: PressIncrement,
	}
	for lift, delta := range increments {
		_, err := tx.Exec(
			`UPDATE training_maxes
			 SET max = max + ?, updated_at = CURRENT_TIMESTAMP
			 WHERE lift = ?`,
			delta, string(lift),
		)
		if err != nil {
			return "", fmt.Errorf("bumping %s: %w", lift, err)
		}
	}

	id := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO cycles (id, lower_delta, press_delta) VALUES (?, ?, ?)`,
		id, SquatDeadliftIncrement, PressIncrement,
	)
	if err != nil {
		return "", fmt.Errorf("recording cycle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing cycle: %w", err)
	}
	return id, nil
}

// Cycles returns the number of recorded next-cycle bumps.
func (s *DB) Cycles() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cycles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cycles: %w", err)
	}
	return n, nil
}

// Close closes the store.
func (s *DB) Close() error {
	return s.db.Close()
}
