// Package store memoizes solved positions in a sqlite database, so that a
// bot or a batch run never searches the same board and rack twice.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/crossplay/bestword/move"
)

var ErrNotFound = errors.New("solution not found")

const schema = `
CREATE TABLE IF NOT EXISTS solutions (
	hash       TEXT PRIMARY KEY,
	board      TEXT NOT NULL,
	rack       TEXT NOT NULL,
	method     TEXT NOT NULL,
	word       TEXT NOT NULL,
	points     INTEGER NOT NULL,
	anchor_x   INTEGER NOT NULL,
	anchor_y   INTEGER NOT NULL,
	direction  TEXT NOT NULL,
	pivot_x    INTEGER NOT NULL,
	pivot_y    INTEGER NOT NULL,
	blanks     TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Solution is a stored search result.
type Solution struct {
	Hash      string
	Board     string
	Rack      string
	Method    string
	Move      *move.Move
	CreatedAt time.Time
}

type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path. ":memory:" works
// for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; an in-memory database also vanishes
	// with its last connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema in %v: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("opened-results-db")
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the solution stored under hash, or ErrNotFound.
func (s *Store) Get(ctx context.Context, hash string) (*Solution, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT board, rack, method, word, points, anchor_x, anchor_y, direction,
			pivot_x, pivot_y, blanks, created_at
		FROM solutions WHERE hash = ?`, hash)

	sol := &Solution{Hash: hash, Move: &move.Move{}}
	var direction, blanks string
	var created int64
	err := row.Scan(&sol.Board, &sol.Rack, &sol.Method, &sol.Move.Word, &sol.Move.Points,
		&sol.Move.AnchorX, &sol.Move.AnchorY, &direction, &sol.Move.PivotX, &sol.Move.PivotY,
		&blanks, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	sol.CreatedAt = time.Unix(created, 0).UTC()
	if err := sol.Move.Direction.UnmarshalText([]byte(direction)); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(blanks), &sol.Move.Blanks); err != nil {
		return nil, fmt.Errorf("bad blanks for %v: %w", hash, err)
	}
	return sol, nil
}

// Put stores a solution, replacing any earlier one with the same hash.
func (s *Store) Put(ctx context.Context, sol *Solution) error {
	blanks, err := json.Marshal(sol.Move.Blanks)
	if err != nil {
		return err
	}
	if sol.CreatedAt.IsZero() {
		sol.CreatedAt = time.Now().UTC()
	}
	m := sol.Move
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO solutions (hash, board, rack, method, word, points,
			anchor_x, anchor_y, direction, pivot_x, pivot_y, blanks, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sol.Hash, sol.Board, sol.Rack, sol.Method, m.Word, m.Points,
		m.AnchorX, m.AnchorY, m.Direction.String(), m.PivotX, m.PivotY,
		string(blanks), sol.CreatedAt.Unix())
	return err
}

// Count is the number of stored solutions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n)
	return n, err
}
