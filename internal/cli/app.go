package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"infinite-experiment/flightdeck/internal/common"
	"infinite-experiment/flightdeck/internal/config"
	"infinite-experiment/flightdeck/internal/db"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/presentation"
	"infinite-experiment/flightdeck/internal/services"
)

// App bundles the wired services behind the CLI commands.
type App struct {
	Config       *config.Config
	Presenter    presentation.Presenter
	Flights      *services.FlightsService
	Pilots       *services.PilotsService
	Schedules    *services.ScheduleService
	Destinations *services.DestinationsService
	Stats        *services.StatsService
	Seeder       *services.SeedService
}

// NewApp opens the database, ensures the schema and wires repositories and
// services. Called once per process, before any command runs.
func NewApp(cfg *config.Config) (*App, error) {
	if err := db.InitSQLite(cfg.DatabasePath); err != nil {
		return nil, err
	}
	ormDB, err := db.InitSQLiteORM(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(db.DB); err != nil {
		return nil, err
	}

	presenter := presentation.NewTablePresenter(os.Stdout)
	cache := common.NewCacheService(cfg.CacheTTLSeconds, cfg.CacheCleanupSeconds)

	flightRepo := repositories.NewFlightRepository(db.DB)
	pilotRepo := repositories.NewPilotRepository(db.DB)
	scheduleRepo := repositories.NewScheduleRepository(db.DB)
	destinationRepo := repositories.NewDestinationRepository(ormDB)
	statsRepo := repositories.NewStatsRepository(db.DB)

	return &App{
		Config:    cfg,
		Presenter: presenter,
		Flights:   services.NewFlightsService(flightRepo),
		Pilots: services.NewPilotsService(
			pilotRepo, flightRepo, scheduleRepo, presenter,
			&stdinConfirmer{reader: bufio.NewReader(os.Stdin)},
		),
		Schedules:    services.NewScheduleService(scheduleRepo),
		Destinations: services.NewDestinationsService(destinationRepo, cache),
		Stats:        services.NewStatsService(statsRepo),
		Seeder:       services.NewSeedService(ormDB),
	}, nil
}

// stdinConfirmer reads one line of operator input per question. It blocks
// until input arrives; the confirmation loop above it handles re-prompting.
type stdinConfirmer struct {
	reader *bufio.Reader
}

func (c *stdinConfirmer) Ask(question string) (string, error) {
	fmt.Print(question)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
