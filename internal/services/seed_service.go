package services

import (
	"context"
	"errors"
	"fmt"

	gormModels "infinite-experiment/flightdeck/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedService loads the sample data set. Each table is seeded as its own
// batch; a duplicate-key conflict is reported for that table and seeding
// continues with the next one.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// SeedResult reports the outcome for one table.
type SeedResult struct {
	Table   string
	Rows    int
	Message string
}

func ptr(s string) *string { return &s }

var samplePilots = []gormModels.Pilot{
	{PilotID: "P0010001", FirstName: "Bhaagyashree", LastName: "Patil", LicenceNumber: "ATPL8954", LicenceExpiry: "2026-03-31", NightFlag: 1},
	{PilotID: "P0010002", FirstName: "Jo", LastName: "Hyde", LicenceNumber: "ATPL5235", LicenceExpiry: "2027-01-26", NightFlag: 1},
	{PilotID: "P0010003", FirstName: "Christina", LastName: "Keating", LicenceNumber: "ATPL8648", LicenceExpiry: "2025-09-03", NightFlag: 0},
	{PilotID: "P0010004", FirstName: "Zach", LastName: "Lyons", LicenceNumber: "CPL85695", LicenceExpiry: "2026-02-28", NightFlag: 1},
	{PilotID: "P0010005", FirstName: "Raghubir", LastName: "Singh", LicenceNumber: "CPL64585", LicenceExpiry: "2025-10-15", NightFlag: 0},
	{PilotID: "P0010006", FirstName: "Matthew", LastName: "Albertyn", LicenceNumber: "CPL89563", LicenceExpiry: "2026-08-22", NightFlag: 1},
	{PilotID: "P0010007", FirstName: "James", LastName: "Davenport", LicenceNumber: "CPL85685", LicenceExpiry: "2025-12-17", NightFlag: 1},
	{PilotID: "P0010008", FirstName: "Paola", LastName: "Bruscoli", LicenceNumber: "ATPL5684", LicenceExpiry: "2026-11-01", NightFlag: 1},
	{PilotID: "P0010009", FirstName: "Ben", LastName: "Ralph", LicenceNumber: "CPL58695", LicenceExpiry: "2026-05-08", NightFlag: 0},
	{PilotID: "P0010010", FirstName: "Neil", LastName: "Langmead", LicenceNumber: "ATPL2135", LicenceExpiry: "2025-06-30", NightFlag: 1},
}

var sampleDestinations = []gormModels.Destination{
	{Code: "DUB", AirportName: "Dublin International", City: "Dublin", Country: "Ireland"},
	{Code: "EMA", AirportName: "East Midlands", City: "Nottingham", Country: "England"},
	{Code: "BHX", AirportName: "Birmingham Airport", City: "Birmingham", Country: "England"},
	{Code: "NWI", AirportName: "Norwich International", City: "Norwich", Country: "England"},
	{Code: "BRS", AirportName: "Bristol Airport", City: "Bristol", Country: "England"},
	{Code: "EXE", AirportName: "Exeter Airport", City: "Exeter", Country: "England"},
	{Code: "SOU", AirportName: "Southampton Airport", City: "Southampton", Country: "England"},
	{Code: "GCI", AirportName: "Guernsey Airport", City: "Guernsey", Country: "Channel Islands"},
	{Code: "JER", AirportName: "Jersey Airport", City: "Jersey", Country: "Channel Islands"},
	{Code: "NCL", AirportName: "Newcastle International", City: "Newcastle", Country: "England"},
	{Code: "CDG", AirportName: "Charles de Gaulle", City: "Paris", Country: "France"},
	{Code: "BIO", AirportName: "Bilbao Airport", City: "Bilbao", Country: "Spain"},
	{Code: "MUC", AirportName: "Munich International", City: "Munich", Country: "Germany"},
	{Code: "VRN", AirportName: "Verona Villafranca Airport", City: "Verona", Country: "Italy"},
	{Code: "PMI", AirportName: "Palma de Mallorca Airport", City: "Palma de Mallorca", Country: "Spain"},
}

var sampleFlights = []gormModels.Flight{
	{FlightID: 1, FlightNumber: "SI2206", DepartureDestinationCode: "GCI", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "08:30:00", ScheduledArrivalTime: "08:50:00"},
	{FlightID: 2, FlightNumber: "SI3350", DepartureDestinationCode: "JER", ArrivalDestinationCode: "SOU", ScheduledDepartureTime: "07:15:00", ScheduledArrivalTime: "08:05:00"},
	{FlightID: 3, FlightNumber: "SI3351", DepartureDestinationCode: "SOU", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "08:35:00", ScheduledArrivalTime: "09:25:00"},
	{FlightID: 4, FlightNumber: "SI5580", DepartureDestinationCode: "JER", ArrivalDestinationCode: "DUB", ScheduledDepartureTime: "10:35:00", ScheduledArrivalTime: "12:20:00"},
	{FlightID: 5, FlightNumber: "SI2206", DepartureDestinationCode: "JER", ArrivalDestinationCode: "EXE", ScheduledDepartureTime: "09:20:00", ScheduledArrivalTime: "10:05:00"},
	{FlightID: 6, FlightNumber: "SI2207", DepartureDestinationCode: "EXE", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "10:45:00", ScheduledArrivalTime: "11:30:00"},
	{FlightID: 7, FlightNumber: "SI2203", DepartureDestinationCode: "EXE", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "08:35:00", ScheduledArrivalTime: "09:20:00"},
	{FlightID: 8, FlightNumber: "SI2202", DepartureDestinationCode: "JER", ArrivalDestinationCode: "EXE", ScheduledDepartureTime: "07:20:00", ScheduledArrivalTime: "08:05:00"},
	{FlightID: 9, FlightNumber: "SI5552", DepartureDestinationCode: "GCI", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "12:45:00", ScheduledArrivalTime: "13:05:00"},
	{FlightID: 10, FlightNumber: "SI5581", DepartureDestinationCode: "DUB", ArrivalDestinationCode: "JER", ScheduledDepartureTime: "13:00:00", ScheduledArrivalTime: "14:45:00"},
	{FlightID: 11, FlightNumber: "SI3312", DepartureDestinationCode: "GCI", ArrivalDestinationCode: "SOU", ScheduledDepartureTime: "10:00:00", ScheduledArrivalTime: "10:45:00"},
	{FlightID: 12, FlightNumber: "SI3328", DepartureDestinationCode: "GCI", ArrivalDestinationCode: "SOU", ScheduledDepartureTime: "13:50:00", ScheduledArrivalTime: "14:35:00"},
	{FlightID: 13, FlightNumber: "SI3342", DepartureDestinationCode: "GCI", ArrivalDestinationCode: "SOU", ScheduledDepartureTime: "18:20:00", ScheduledArrivalTime: "19:05:00"},
	{FlightID: 14, FlightNumber: "SI3329", DepartureDestinationCode: "SOU", ArrivalDestinationCode: "GCI", ScheduledDepartureTime: "15:05:00", ScheduledArrivalTime: "15:50:00"},
	{FlightID: 15, FlightNumber: "SI3313", DepartureDestinationCode: "SOU", ArrivalDestinationCode: "GCI", ScheduledDepartureTime: "11:15:00", ScheduledArrivalTime: "12:00:00"},
}

var sampleSchedules = []gormModels.Schedule{
	{ScheduleID: 1, DepartureDate: "2025-04-21", FlightID: 2, PilotID: ptr("P0010001"), Status: "scheduled"},
	{ScheduleID: 2, DepartureDate: "2025-04-21", FlightID: 3, PilotID: ptr("P0010001"), Status: "scheduled"},
	{ScheduleID: 3, DepartureDate: "2025-04-21", FlightID: 5, PilotID: ptr("P0010002"), Status: "scheduled"},
	{ScheduleID: 4, DepartureDate: "2025-04-21", FlightID: 6, PilotID: ptr("P0010002"), Status: "scheduled"},
	{ScheduleID: 5, DepartureDate: "2025-04-06", FlightID: 7, PilotID: ptr("P0010002"), Status: "landed"},
	{ScheduleID: 6, DepartureDate: "2025-04-06", FlightID: 8, PilotID: ptr("P0010002"), Status: "landed"},
	{ScheduleID: 7, DepartureDate: "2025-04-07", FlightID: 4, PilotID: ptr("P0010003"), Status: "landed"},
	{ScheduleID: 8, DepartureDate: "2025-04-07", FlightID: 10, PilotID: ptr("P0010003"), Status: "landed"},
	{ScheduleID: 9, DepartureDate: "2025-04-08", FlightID: 9, PilotID: ptr("P0010004"), Status: "landed"},
	{ScheduleID: 10, DepartureDate: "2025-04-09", FlightID: 1, PilotID: nil, Status: "cancelled"},
	{ScheduleID: 11, DepartureDate: "2025-04-29", FlightID: 2, PilotID: nil, Status: "scheduled"},
}

// Load seeds all four tables. The dimension tables go first so the FK checks
// on flights and schedules pass.
func (s *SeedService) Load(ctx context.Context) []SeedResult {
	results := make([]SeedResult, 0, 4)

	results = append(results, s.seedTable(ctx, "d_destination", len(sampleDestinations), func(tx *gorm.DB) error {
		return tx.Create(&sampleDestinations).Error
	}))
	results = append(results, s.seedTable(ctx, "d_pilot", len(samplePilots), func(tx *gorm.DB) error {
		return tx.Create(&samplePilots).Error
	}))
	results = append(results, s.seedTable(ctx, "d_flight", len(sampleFlights), func(tx *gorm.DB) error {
		return tx.Create(&sampleFlights).Error
	}))
	results = append(results, s.seedTable(ctx, "f_schedule", len(sampleSchedules), func(tx *gorm.DB) error {
		return tx.Create(&sampleSchedules).Error
	}))

	return results
}

func (s *SeedService) seedTable(ctx context.Context, table string, rows int, insert func(tx *gorm.DB) error) SeedResult {
	err := insert(s.db.WithContext(ctx).Omit(clause.Associations))
	if err == nil {
		return SeedResult{Table: table, Rows: rows, Message: fmt.Sprintf("inserted %d rows", rows)}
	}

	// Integrity conflicts are reported per table; the remaining tables still
	// get their batch.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return SeedResult{Table: table, Message: fmt.Sprintf(
			"data integrity error: a row with this primary key already exists in %s (%v)", table, err)}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return SeedResult{Table: table, Message: fmt.Sprintf(
			"integrity error: foreign key constraint failed on %s (%v)", table, err)}
	}
	return SeedResult{Table: table, Message: fmt.Sprintf("integrity error: data entry failed on %s (%v)", table, err)}
}
