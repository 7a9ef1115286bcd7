package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"infinite-experiment/flightdeck/internal/common"
	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
	gormModels "infinite-experiment/flightdeck/internal/models/gorm"
)

const destinationCacheTTL = 5 * time.Minute

type DestinationsService struct {
	repo  *repositories.DestinationRepository
	cache *common.CacheService
}

func NewDestinationsService(repo *repositories.DestinationRepository, cache *common.CacheService) *DestinationsService {
	return &DestinationsService{repo: repo, cache: cache}
}

// FindDestinations returns destinations matching the supplied filters; no
// filters returns all rows. A lookup by code alone is served through the
// cache; anything broader goes to the repository.
func (svc *DestinationsService) FindDestinations(ctx context.Context, filters dtos.DestinationFilters) (dtos.ResultSet, error) {
	if filters.Code != "" && filters.Name == "" && filters.City == "" && filters.Country == "" {
		dest, err := svc.ResolveCode(ctx, filters.Code)
		if err != nil {
			return dtos.ResultSet{}, err
		}
		if dest == nil {
			return dtos.DestinationResultSet(nil), nil
		}
		return dtos.DestinationResultSet([]gormModels.Destination{*dest}), nil
	}

	rows, err := svc.repo.Find(ctx, filters)
	if err != nil {
		return dtos.ResultSet{}, err
	}

	return dtos.DestinationResultSet(rows), nil
}

// ResolveCode returns the destination row for a code, read through the
// cache. Returns nil when the code is unknown.
func (svc *DestinationsService) ResolveCode(ctx context.Context, code string) (*gormModels.Destination, error) {
	code = strings.ToUpper(code)
	key := string(constants.CachePrefixDestination) + code

	val, err := svc.cache.GetOrSet(key, destinationCacheTTL, func() (any, error) {
		return svc.repo.FindByCode(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	dest, _ := val.(*gormModels.Destination)
	return dest, nil
}

// UpdateDestination applies the supplied changes to one destination and
// reports the row before and after. The code is normalized to upper case to
// match the stored convention. There is deliberately no existence check: an
// unknown code updates zero rows, and both lookups come back empty.
func (svc *DestinationsService) UpdateDestination(ctx context.Context, code string, changes dtos.DestinationChanges) (dtos.MutationReport, error) {
	var report dtos.MutationReport

	if code == "" {
		return report, fmt.Errorf("destination code: %w", constants.ErrMissingArgument)
	}
	code = strings.ToUpper(code)

	before, err := svc.FindDestinations(ctx, dtos.DestinationFilters{Code: code})
	if err != nil {
		return report, err
	}
	report.Before = before

	if !changes.Empty() {
		if err := svc.repo.ApplyChanges(ctx, code, changes); err != nil {
			return report, err
		}
		svc.cache.Delete(string(constants.CachePrefixDestination) + code)
	}

	after, err := svc.FindDestinations(ctx, dtos.DestinationFilters{Code: code})
	if err != nil {
		return report, err
	}
	report.After = after

	return report, nil
}
