package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"homeservice.backend/internal/config"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/datasources/postgres"
	"homeservice.backend/internal/infrastructure/repositories"
	"homeservice.backend/internal/usecases"
)

// Default job location the seeded workers are placed around.
const (
	defaultLat = 22.6734289
	defaultLng = 88.3743036
)

type seedWorker struct {
	fullName        string
	email           string
	phoneNumber     string
	location        string
	specializations []string
	dLat, dLng      float64
}

var testWorkers = []seedWorker{
	{
		fullName:        "Rahul Kumar",
		email:           "rahul.kumar@test.com",
		phoneNumber:     "919876543210",
		location:        "Kolkata, West Bengal",
		specializations: []string{"plumber", "pipe_installation"},
		dLat:            0.01, dLng: 0.01,
	},
	{
		fullName:        "Priya Singh",
		email:           "priya.singh@test.com",
		phoneNumber:     "919876543211",
		location:        "Kolkata, West Bengal",
		specializations: []string{"electrician"},
		dLat:            -0.01, dLng: -0.01,
	},
	{
		fullName:        "Amit Das",
		email:           "amit.das@test.com",
		phoneNumber:     "919876543212",
		location:        "Kolkata, West Bengal",
		specializations: []string{"mechanic"},
		dLat:            0.005, dLng: 0.005,
	},
}

type seedRuntime interface {
	WorkerByEmail(ctx context.Context, email string) (*entities.Worker, error)
	CreateWorker(ctx context.Context, input *entities.CreateWorkerInput) (*entities.Worker, error)
	CreateSpecialization(ctx context.Context, input *entities.CreateSpecializationInput) (*entities.Specialization, error)
	CreateLiveLocation(ctx context.Context, input *entities.CreateLiveLocationInput) (*entities.LiveLocation, error)
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config, migrate bool) (seedRuntime, io.Closer, error)
	out     io.Writer
}

type seedRuntimeImpl struct {
	workers   *usecases.WorkerUsecase
	specs     *usecases.SpecializationUsecase
	locations *usecases.LiveLocationUsecase
}

func (r seedRuntimeImpl) WorkerByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	return r.workers.GetByEmail(ctx, email)
}

func (r seedRuntimeImpl) CreateWorker(ctx context.Context, input *entities.CreateWorkerInput) (*entities.Worker, error) {
	return r.workers.Create(ctx, input)
}

func (r seedRuntimeImpl) CreateSpecialization(ctx context.Context, input *entities.CreateSpecializationInput) (*entities.Specialization, error) {
	return r.specs.Create(ctx, input)
}

func (r seedRuntimeImpl) CreateLiveLocation(ctx context.Context, input *entities.CreateLiveLocationInput) (*entities.LiveLocation, error) {
	return r.locations.Create(ctx, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

var openSeedDB = postgres.NewConnection

// newSeedRuntime wires the usecases without a relay; seeded samples are not broadcast.
func newSeedRuntime(db *gorm.DB) seedRuntime {
	workerRepo := repositories.NewWorkerRepository(db)
	uow := repositories.NewUnitOfWork(db)
	return seedRuntimeImpl{
		workers:   usecases.NewWorkerUsecase(workerRepo, uow),
		specs:     usecases.NewSpecializationUsecase(repositories.NewSpecializationRepository(db), workerRepo, uow),
		locations: usecases.NewLiveLocationUsecase(repositories.NewLiveLocationRepository(db), workerRepo, uow, nil),
	}
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config, migrate bool) (seedRuntime, io.Closer, error) {
			db, err := openSeedDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			if migrate {
				if err := postgres.Migrate(db); err != nil {
					_ = sqlDB.Close()
					return nil, nil, err
				}
			}
			return newSeedRuntime(db), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runSeed(args []string, deps seedDeps) error {
	def := defaultSeedDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	var (
		lat, lng float64
		password string
		migrate  bool
	)
	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	fs.Float64Var(&lat, "lat", defaultLat, "latitude the workers are placed around")
	fs.Float64Var(&lng, "lng", defaultLng, "longitude the workers are placed around")
	fs.StringVar(&password, "password", "password123", "password for every seeded worker")
	fs.BoolVar(&migrate, "migrate", false, "run schema migration before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("coordinates out of range: %v,%v", lat, lng)
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	runtime, closer, err := deps.prepare(deps.loadCfg(), migrate)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	for _, sw := range testWorkers {
		worker, err := runtime.WorkerByEmail(ctx, sw.email)
		switch {
		case err == nil:
			_, _ = fmt.Fprintf(deps.out, "worker %s already exists (%s), skipping\n", sw.email, worker.ID)
			continue
		case !errors.Is(err, domainerrors.ErrNotFound):
			return fmt.Errorf("failed to look up %s: %w", sw.email, err)
		}

		location := sw.location
		worker, err = runtime.CreateWorker(ctx, &entities.CreateWorkerInput{
			FullName:    sw.fullName,
			Email:       sw.email,
			PhoneNumber: sw.phoneNumber,
			Password:    password,
			Location:    &location,
			IsAvailable: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", sw.email, err)
		}
		_, _ = fmt.Fprintf(deps.out, "created worker %s (%s)\n", worker.FullName, worker.ID)

		for _, name := range sw.specializations {
			if _, err := runtime.CreateSpecialization(ctx, &entities.CreateSpecializationInput{WorkerID: worker.ID, Name: name}); err != nil {
				return fmt.Errorf("failed to add %s to %s: %w", name, worker.ID, err)
			}
		}

		wLat, wLng := lat+sw.dLat, lng+sw.dLng
		loc, err := runtime.CreateLiveLocation(ctx, &entities.CreateLiveLocationInput{WorkerID: worker.ID, Lat: &wLat, Lng: &wLng})
		if err != nil {
			return fmt.Errorf("failed to place worker %s: %w", worker.ID, err)
		}
		_, _ = fmt.Fprintf(deps.out, "placed worker %s at (%.6f, %.6f)\n", worker.ID, loc.Lat, loc.Lng)
	}
	return nil
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
