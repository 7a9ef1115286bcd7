package repositories_test

import (
	"context"
	"testing"

	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
)

func TestDestinationFindByCode(t *testing.T) {
	_, gdb := setupTestDB(t)
	repo := repositories.NewDestinationRepository(gdb)
	ctx := context.Background()

	dest, err := repo.FindByCode(ctx, "jer")
	if err != nil {
		t.Fatalf("FindByCode failed: %v", err)
	}
	if dest == nil {
		t.Fatal("Expected JER to resolve case-insensitively")
	}
	if dest.AirportName != "Jersey Airport" {
		t.Errorf("Expected Jersey Airport, got %q", dest.AirportName)
	}

	missing, err := repo.FindByCode(ctx, "ZZZ")
	if err != nil {
		t.Fatalf("FindByCode failed for unknown code: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for an unknown code")
	}
}

func TestDestinationFind_Filters(t *testing.T) {
	_, gdb := setupTestDB(t)
	repo := repositories.NewDestinationRepository(gdb)
	ctx := context.Background()

	all, err := repo.Find(ctx, dtos.DestinationFilters{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(all) != 15 {
		t.Errorf("Expected all 15 destinations, got %d", len(all))
	}

	england, err := repo.Find(ctx, dtos.DestinationFilters{Country: "England"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(england) != 7 {
		t.Errorf("Expected 7 English destinations, got %d", len(england))
	}

	paris, err := repo.Find(ctx, dtos.DestinationFilters{City: "Paris", Country: "France"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(paris) != 1 || paris[0].Code != "CDG" {
		t.Errorf("Expected CDG only, got %v", paris)
	}
}

func TestDestinationApplyChanges(t *testing.T) {
	_, gdb := setupTestDB(t)
	repo := repositories.NewDestinationRepository(gdb)
	ctx := context.Background()

	err := repo.ApplyChanges(ctx, "EMA", dtos.DestinationChanges{
		Name: "East Midlands Airport Central",
		City: "Derby",
	})
	if err != nil {
		t.Fatalf("ApplyChanges failed: %v", err)
	}

	dest, err := repo.FindByCode(ctx, "EMA")
	if err != nil {
		t.Fatalf("FindByCode failed: %v", err)
	}
	if dest.AirportName != "East Midlands Airport Central" {
		t.Errorf("Expected updated name, got %q", dest.AirportName)
	}
	if dest.City != "Derby" {
		t.Errorf("Expected updated city, got %q", dest.City)
	}
	if dest.Country != "England" {
		t.Errorf("Expected country untouched, got %q", dest.Country)
	}
}

func TestDestinationApplyChanges_UnknownCodeAffectsNothing(t *testing.T) {
	_, gdb := setupTestDB(t)
	repo := repositories.NewDestinationRepository(gdb)
	ctx := context.Background()

	// No existence check by design: zero rows change and no error is raised.
	if err := repo.ApplyChanges(ctx, "ZZZ", dtos.DestinationChanges{City: "Nowhere"}); err != nil {
		t.Fatalf("ApplyChanges failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 15 {
		t.Errorf("Expected 15 destinations, got %d", count)
	}
}
