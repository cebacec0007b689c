// Package postgres implements the airport reference table persistence
// with pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skyfare/flight-fare-service/internal/domain"
)

// db is the subset of pgx operations the store needs. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so the same queries run inside and outside a
// transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// AirportStore is the Postgres implementation of domain.AirportStore.
type AirportStore struct {
	db db

	// pool is set only on the root store; a store bound to a transaction
	// carries a nil pool and cannot open nested transactions.
	pool *pgxpool.Pool
}

var _ domain.AirportStore = (*AirportStore)(nil)

// NewAirportStore constructs an AirportStore backed by the given pool.
func NewAirportStore(pool *pgxpool.Pool) *AirportStore {
	return &AirportStore{db: pool, pool: pool}
}

// List implements domain.AirportStore.List.
func (s *AirportStore) List(ctx context.Context) ([]domain.Airport, error) {
	const q = `
		SELECT iata, city, lat, lon, state, active
		FROM airports
		ORDER BY iata`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("postgres.AirportStore.List: %w", err)
	}
	defer rows.Close()

	// Non-nil even when empty so the table dump renders as [] rather
	// than null.
	airports := []domain.Airport{}
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.IATA, &a.City, &a.Lat, &a.Lon, &a.State, &a.Active); err != nil {
			return nil, fmt.Errorf("postgres.AirportStore.List: scan: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.AirportStore.List: %w", err)
	}
	return airports, nil
}

// ExistingCodes implements domain.AirportStore.ExistingCodes.
func (s *AirportStore) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	const q = `
		SELECT iata
		FROM airports
		WHERE iata = ANY(@codes)
		ORDER BY iata`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"codes": codes})
	if err != nil {
		return nil, fmt.Errorf("postgres.AirportStore.ExistingCodes: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("postgres.AirportStore.ExistingCodes: scan: %w", err)
		}
		found = append(found, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.AirportStore.ExistingCodes: %w", err)
	}
	return found, nil
}

// UpdateStatus implements domain.AirportStore.UpdateStatus.
func (s *AirportStore) UpdateStatus(ctx context.Context, iata string, active bool) error {
	const q = `UPDATE airports SET active = @active WHERE iata = @iata`

	tag, err := s.db.Exec(ctx, q, pgx.NamedArgs{"iata": iata, "active": active})
	if err != nil {
		return fmt.Errorf("postgres.AirportStore.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

// Count implements domain.AirportStore.Count.
func (s *AirportStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM airports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres.AirportStore.Count: %w", err)
	}
	return count, nil
}

// InsertBatch implements domain.AirportStore.InsertBatch. Inserts are
// pipelined in a single round trip.
func (s *AirportStore) InsertBatch(ctx context.Context, airports []domain.Airport) error {
	if len(airports) == 0 {
		return nil
	}

	const q = `
		INSERT INTO airports (iata, city, lat, lon, state)
		VALUES (@iata, @city, @lat, @lon, @state)`

	batch := &pgx.Batch{}
	for _, a := range airports {
		batch.Queue(q, pgx.NamedArgs{
			"iata":  a.IATA,
			"city":  a.City,
			"lat":   a.Lat,
			"lon":   a.Lon,
			"state": a.State,
		})
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range airports {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("postgres.AirportStore.InsertBatch: %w", err)
		}
	}
	return nil
}

// DeleteByCodes implements domain.AirportStore.DeleteByCodes.
func (s *AirportStore) DeleteByCodes(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}

	const q = `DELETE FROM airports WHERE iata = ANY(@codes)`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"codes": codes}); err != nil {
		return fmt.Errorf("postgres.AirportStore.DeleteByCodes: %w", err)
	}
	return nil
}

// WithTx implements domain.AirportStore.WithTx. A store already bound to
// a transaction runs fn directly inside it.
func (s *AirportStore) WithTx(ctx context.Context, fn func(domain.AirportStore) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.AirportStore.WithTx: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&AirportStore{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.AirportStore.WithTx: commit: %w", err)
	}
	return nil
}
