package postgres_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-fare-service/internal/adapter/store/postgres"
	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/migrations"
)

// TestMain applies all pending migrations once for the whole package.
// Without TEST_DATABASE_URL every test skips, so the package stays green
// in environments without a database.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("TestMain: open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// newTestStore opens a pool against the test database and guarantees an
// empty airports table before and after the test.
func newTestStore(t *testing.T) *postgres.AirportStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "open pool")
	require.NoError(t, pool.Ping(context.Background()), "ping")

	truncate := func() {
		_, err := pool.Exec(context.Background(), `TRUNCATE airports`)
		require.NoError(t, err, "truncate airports")
	}
	truncate()

	t.Cleanup(func() {
		truncate()
		pool.Close()
	})

	return postgres.NewAirportStore(pool)
}

func seedAirports() []domain.Airport {
	return []domain.Airport{
		{IATA: "JFK", City: "New York", Lat: 40.6413, Lon: -73.7781, State: "NY"},
		{IATA: "LAX", City: "Los Angeles", Lat: 33.9416, Lon: -118.4085, State: "CA"},
		{IATA: "SFO", City: "San Francisco", Lat: 37.6213, Lon: -122.379, State: "CA"},
	}
}

func TestAirportStore_InsertBatchAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	airports, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, airports, 3)

	assert.Equal(t, "JFK", airports[0].IATA, "ordered by code")
	assert.Equal(t, "LAX", airports[1].IATA)
	assert.Equal(t, "SFO", airports[2].IATA)
	assert.True(t, airports[0].Active, "active defaults to true")
	assert.Equal(t, 40.6413, airports[0].Lat)
}

func TestAirportStore_List_EmptyTable(t *testing.T) {
	store := newTestStore(t)

	airports, err := store.List(context.Background())
	require.NoError(t, err)

	// An empty table must serialize as [] on the list endpoint, so the
	// slice is non-nil.
	assert.NotNil(t, airports)
	assert.Empty(t, airports)
}

func TestAirportStore_InsertBatch_Empty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.InsertBatch(context.Background(), nil))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAirportStore_Count(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAirportStore_ExistingCodes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	found, err := store.ExistingCodes(ctx, []string{"JFK", "ZZZ", "LAX"})
	require.NoError(t, err)
	assert.Equal(t, []string{"JFK", "LAX"}, found)

	found, err = store.ExistingCodes(ctx, []string{"ZZZ"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAirportStore_UpdateStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	require.NoError(t, store.UpdateStatus(ctx, "JFK", false))

	airports, err := store.List(ctx)
	require.NoError(t, err)
	assert.False(t, airports[0].Active, "JFK deactivated")
	assert.True(t, airports[1].Active, "LAX untouched")

	err = store.UpdateStatus(ctx, "ZZZ", true)
	require.Error(t, err)
	assert.True(t, domain.IsAirportNotFound(err))
}

func TestAirportStore_DeleteByCodes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))
	require.NoError(t, store.DeleteByCodes(ctx, []string{"JFK", "SFO"}))

	airports, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "LAX", airports[0].IATA)
}

func TestAirportStore_WithTx_CommitsOnSuccess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	err := store.WithTx(ctx, func(tx domain.AirportStore) error {
		if err := tx.InsertBatch(ctx, []domain.Airport{
			{IATA: "SEA", City: "Seattle", Lat: 47.4502, Lon: -122.3088, State: "WA"},
		}); err != nil {
			return err
		}
		return tx.DeleteByCodes(ctx, []string{"SFO"})
	})
	require.NoError(t, err)

	found, err := store.ExistingCodes(ctx, []string{"SEA", "SFO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SEA"}, found)
}

func TestAirportStore_WithTx_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBatch(ctx, seedAirports()))

	err := store.WithTx(ctx, func(tx domain.AirportStore) error {
		if err := tx.DeleteByCodes(ctx, []string{"JFK"}); err != nil {
			return err
		}
		// Duplicate key forces the whole transaction to roll back.
		return tx.InsertBatch(ctx, []domain.Airport{
			{IATA: "LAX", City: "Los Angeles", Lat: 33.9416, Lon: -118.4085, State: "CA"},
		})
	})
	require.Error(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "delete rolled back with the failed insert")
}
