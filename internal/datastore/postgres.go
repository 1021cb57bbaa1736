// Package datastore is an optional pgx-backed loader for subset problem
// instances: a universe of IDs and their scores, keyed by an instance name.
// It has no bearing on search state itself (nothing about a running Search
// is persisted here) — only on the problem data a Search is built against.
package datastore

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pooled connection to connStr and verifies it with a ping.
func Connect(ctx context.Context, connStr string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("datastore: unable to connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("datastore: ping failed: %w", err)
	}
	log.Println("[datastore] connected")
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the problem_items table if it does not already exist.
func (s *Store) InitSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS problem_items (
			instance_key TEXT NOT NULL,
			item_id      INT  NOT NULL,
			score        DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (instance_key, item_id)
		);
	`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("datastore: failed to init schema: %w", err)
	}
	return nil
}

// SaveInstance replaces the stored universe/score pairs for instanceKey.
func (s *Store) SaveInstance(ctx context.Context, instanceKey string, scores map[int]float64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM problem_items WHERE instance_key = $1`, instanceKey); err != nil {
		return fmt.Errorf("datastore: failed to clear instance: %w", err)
	}
	for id, score := range scores {
		_, err := tx.Exec(ctx,
			`INSERT INTO problem_items (instance_key, item_id, score) VALUES ($1, $2, $3)`,
			instanceKey, id, score)
		if err != nil {
			return fmt.Errorf("datastore: failed to insert item %d: %w", id, err)
		}
	}
	return tx.Commit(ctx)
}

// LoadInstance returns the universe and per-ID score for instanceKey.
func (s *Store) LoadInstance(ctx context.Context, instanceKey string) ([]int, map[int]float64, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT item_id, score FROM problem_items WHERE instance_key = $1 ORDER BY item_id`, instanceKey)
	if err != nil {
		return nil, nil, fmt.Errorf("datastore: failed to load instance %q: %w", instanceKey, err)
	}
	defer rows.Close()

	var universe []int
	scores := make(map[int]float64)
	for rows.Next() {
		var id int
		var score float64
		if err := rows.Scan(&id, &score); err != nil {
			return nil, nil, err
		}
		universe = append(universe, id)
		scores[id] = score
	}
	return universe, scores, rows.Err()
}
