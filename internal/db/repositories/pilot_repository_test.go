package repositories_test

import (
	"context"
	"testing"

	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
)

func TestFindSchedules_NoFilters_OnlyAssigned(t *testing.T) {
	conn, _ := setupTestDB(t)
	repo := repositories.NewPilotRepository(conn)

	rows, err := repo.FindSchedules(context.Background(), dtos.PilotFilters{})
	if err != nil {
		t.Fatalf("FindSchedules failed: %v", err)
	}

	// 11 schedule instances, 2 unassigned; inner joins drop those.
	if len(rows) != 9 {
		t.Fatalf("Expected 9 assigned rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.PilotID == "" {
			t.Error("Inner join returned a row without a pilot")
		}
	}
}

func TestFindSchedules_ByPilot(t *testing.T) {
	conn, _ := setupTestDB(t)
	repo := repositories.NewPilotRepository(conn)
	ctx := context.Background()

	cases := []struct {
		name    string
		filters dtos.PilotFilters
		want    int
	}{
		{"by id", dtos.PilotFilters{PilotID: "P0010002"}, 4},
		{"by first name", dtos.PilotFilters{FirstName: "Jo"}, 4},
		{"by last name", dtos.PilotFilters{LastName: "Keating"}, 2},
		{"id and name", dtos.PilotFilters{PilotID: "P0010001", FirstName: "Bhaagyashree"}, 2},
		{"pilot with no assignments", dtos.PilotFilters{PilotID: "P0010005"}, 0},
		{"mismatched conjunction", dtos.PilotFilters{PilotID: "P0010001", FirstName: "Jo"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.FindSchedules(ctx, tc.filters)
			if err != nil {
				t.Fatalf("FindSchedules failed: %v", err)
			}
			if len(rows) != tc.want {
				t.Errorf("Expected %d rows, got %d", tc.want, len(rows))
			}
		})
	}
}

func TestFindSchedules_JoinedColumns(t *testing.T) {
	conn, _ := setupTestDB(t)
	repo := repositories.NewPilotRepository(conn)

	rows, err := repo.FindSchedules(context.Background(), dtos.PilotFilters{PilotID: "P0010004"})
	if err != nil {
		t.Fatalf("FindSchedules failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.FirstName != "Zach" || row.LastName != "Lyons" {
		t.Errorf("Expected Zach Lyons, got %s %s", row.FirstName, row.LastName)
	}
	if row.DepartureCity != "Guernsey" || row.ArrivalCity != "Jersey" {
		t.Errorf("Expected Guernsey -> Jersey, got %s -> %s", row.DepartureCity, row.ArrivalCity)
	}
	if row.Status != "landed" {
		t.Errorf("Expected status landed, got %q", row.Status)
	}
}
