package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/skyfare/flight-fare-service/internal/domain"
)

// msgInvalidIATAParam is the caller-facing message for a malformed iata
// path parameter on the status endpoint.
const msgInvalidIATAParam = "Iata parameter is not in a valid format"

// AirportUseCase defines the airport reference table operations.
type AirportUseCase interface {
	// Import synchronizes the local reference table with the upstream
	// authoritative airport list. A first run bulk-inserts everything;
	// later runs reconcile additions and removals atomically.
	Import(ctx context.Context) error

	// List returns the full reference table.
	List(ctx context.Context) ([]domain.Airport, error)

	// SetStatus toggles one airport's active flag.
	SetStatus(ctx context.Context, iata string, active bool) error
}

// airportUseCase implements AirportUseCase.
type airportUseCase struct {
	store    domain.AirportStore
	provider domain.FareProvider
}

// NewAirportUseCase creates an AirportUseCase backed by the given store
// and upstream provider.
func NewAirportUseCase(store domain.AirportStore, provider domain.FareProvider) AirportUseCase {
	return &airportUseCase{store: store, provider: provider}
}

// Import implements AirportUseCase.Import.
func (uc *airportUseCase) Import(ctx context.Context) error {
	runID := uuid.New().String()

	upstream, err := uc.provider.FetchAirports(ctx)
	if err != nil {
		return err
	}

	// A single malformed upstream record aborts the whole sync so the
	// reference table never holds partial rows. The caller cannot fix
	// the upstream feed, so this is an upstream failure, not a
	// validation one.
	for _, airport := range upstream {
		if err := airport.Validate(); err != nil {
			return domain.NewUpstreamError(0, "",
				fmt.Errorf("upstream airport list is malformed: %s", err))
		}
	}

	count, err := uc.store.Count(ctx)
	if err != nil {
		return domain.WrapStoreError("count airports", err)
	}

	if count == 0 {
		if err := uc.store.InsertBatch(ctx, upstream); err != nil {
			return domain.WrapStoreError("bootstrap airport table", err)
		}
		log.Info().
			Str("sync_run_id", runID).
			Int("inserted", len(upstream)).
			Msg("airport table bootstrapped")
		return nil
	}

	local, err := uc.store.List(ctx)
	if err != nil {
		return domain.WrapStoreError("list airports", err)
	}

	toAdd, toRemove := diffAirports(upstream, local)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		log.Info().
			Str("sync_run_id", runID).
			Msg("airport table already up to date")
		return nil
	}

	err = uc.store.WithTx(ctx, func(tx domain.AirportStore) error {
		if len(toAdd) > 0 {
			if err := tx.InsertBatch(ctx, toAdd); err != nil {
				return err
			}
		}
		if len(toRemove) > 0 {
			if err := tx.DeleteByCodes(ctx, toRemove); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.WrapStoreError("reconcile airport table", err)
	}

	log.Info().
		Str("sync_run_id", runID).
		Int("added", len(toAdd)).
		Int("removed", len(toRemove)).
		Msg("airport table reconciled")
	return nil
}

// List implements AirportUseCase.List.
func (uc *airportUseCase) List(ctx context.Context) ([]domain.Airport, error) {
	airports, err := uc.store.List(ctx)
	if err != nil {
		return nil, domain.WrapStoreError("list airports", err)
	}
	return airports, nil
}

// SetStatus implements AirportUseCase.SetStatus.
func (uc *airportUseCase) SetStatus(ctx context.Context, iata string, active bool) error {
	if !domain.IsValidIATACode(iata) {
		return domain.NewValidationError("iata", msgInvalidIATAParam)
	}

	if err := uc.store.UpdateStatus(ctx, iata, active); err != nil {
		if domain.IsAirportNotFound(err) {
			return err
		}
		return domain.WrapStoreError("update airport status", err)
	}
	return nil
}

// diffAirports splits the upstream list against the local table into the
// airports to insert and the IATA codes to delete.
func diffAirports(upstream, local []domain.Airport) (toAdd []domain.Airport, toRemove []string) {
	upstreamCodes := make(map[string]bool, len(upstream))
	for _, airport := range upstream {
		upstreamCodes[airport.IATA] = true
	}
	localCodes := make(map[string]bool, len(local))
	for _, airport := range local {
		localCodes[airport.IATA] = true
	}

	for _, airport := range upstream {
		if !localCodes[airport.IATA] {
			toAdd = append(toAdd, airport)
		}
	}
	for _, airport := range local {
		if !upstreamCodes[airport.IATA] {
			toRemove = append(toRemove, airport.IATA)
		}
	}
	return toAdd, toRemove
}
