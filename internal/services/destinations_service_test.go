package services

import (
	"context"
	"testing"

	"infinite-experiment/flightdeck/internal/common"
	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
	gormModels "infinite-experiment/flightdeck/internal/models/gorm"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDestinationsService(gdb *gorm.DB) *DestinationsService {
	return NewDestinationsService(
		repositories.NewDestinationRepository(gdb),
		common.NewCacheService(300, 600),
	)
}

func TestFindDestinations_NoFiltersReturnsAll(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	rs, err := svc.FindDestinations(context.Background(), dtos.DestinationFilters{})
	require.NoError(t, err)
	require.Equal(t, dtos.DestinationHeaders, rs.Headers)
	require.Len(t, rs.Rows, 15)
}

func TestFindDestinations_Conjunction(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	rs, err := svc.FindDestinations(context.Background(), dtos.DestinationFilters{City: "Paris", Country: "France"})
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	require.Equal(t, "CDG", rs.Rows[0][0])
}

func TestFindDestinations_CodeOnlyLookupIsCached(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)
	ctx := context.Background()

	first, err := svc.FindDestinations(ctx, dtos.DestinationFilters{Code: "JER"})
	require.NoError(t, err)
	require.Len(t, first.Rows, 1)
	require.Equal(t, "Jersey Airport", first.Rows[0][1])

	// A write that bypasses the service leaves the cached row visible.
	err = gdb.Model(&gormModels.Destination{}).
		Where("destination_code = ?", "JER").
		Update("airport_name", "Jersey International").Error
	require.NoError(t, err)

	second, err := svc.FindDestinations(ctx, dtos.DestinationFilters{Code: "JER"})
	require.NoError(t, err)
	require.Equal(t, "Jersey Airport", second.Rows[0][1])
}

func TestResolveCode_CaseInsensitive(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	dest, err := svc.ResolveCode(context.Background(), "jer")
	require.NoError(t, err)
	require.NotNil(t, dest)
	require.Equal(t, "Jersey Airport", dest.AirportName)
}

func TestUpdateDestination_MissingCode(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	_, err := svc.UpdateDestination(context.Background(), "", dtos.DestinationChanges{Name: "Anywhere"})
	require.ErrorIs(t, err, constants.ErrMissingArgument)
}

func TestUpdateDestination_AppliesChangesAndInvalidatesCache(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)
	ctx := context.Background()

	// Prime the cache so a stale entry would be visible after the write.
	cached, err := svc.ResolveCode(ctx, "EMA")
	require.NoError(t, err)
	require.Equal(t, "East Midlands", cached.AirportName)

	report, err := svc.UpdateDestination(ctx, "ema", dtos.DestinationChanges{
		Name: "East Midlands International",
		City: "Castle Donington",
	})
	require.NoError(t, err)

	require.Equal(t, "East Midlands", report.Before.Rows[0][1])
	require.Equal(t, "East Midlands International", report.After.Rows[0][1])
	require.Equal(t, "Castle Donington", report.After.Rows[0][2])
	require.Equal(t, "England", report.After.Rows[0][3], "country must stay untouched")

	fresh, err := svc.ResolveCode(ctx, "EMA")
	require.NoError(t, err)
	require.Equal(t, "East Midlands International", fresh.AirportName)
}

func TestUpdateDestination_AfterLookupSeesFreshRow(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	// The Before lookup primes the cache; without the invalidation the
	// After lookup would serve the pre-update row.
	report, err := svc.UpdateDestination(context.Background(), "NCL", dtos.DestinationChanges{Name: "Newcastle Airport"})
	require.NoError(t, err)
	require.Equal(t, "Newcastle International", report.Before.Rows[0][1])
	require.Equal(t, "Newcastle Airport", report.After.Rows[0][1])
}

func TestUpdateDestination_NoChangesIsLookupOnly(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	report, err := svc.UpdateDestination(context.Background(), "BRS", dtos.DestinationChanges{})
	require.NoError(t, err)
	require.Equal(t, report.Before, report.After)
	require.Len(t, report.Before.Rows, 1)
}

func TestUpdateDestination_UnknownCodeAffectsNothing(t *testing.T) {
	_, gdb := setupServiceDB(t)
	svc := newDestinationsService(gdb)

	report, err := svc.UpdateDestination(context.Background(), "ZZZ", dtos.DestinationChanges{Name: "Nowhere"})
	require.NoError(t, err)
	require.True(t, report.Before.Empty())
	require.True(t, report.After.Empty())
}
