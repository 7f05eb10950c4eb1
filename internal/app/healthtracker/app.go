// Package healthtracker собирает зависимости сервиса и запускает HTTP и gRPC серверы.
package healthtracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/health-tracker/internal/cache"
	"github.com/magabrotheeeer/health-tracker/internal/config"
	"github.com/magabrotheeeer/health-tracker/internal/events"
	grpcserver "github.com/magabrotheeeer/health-tracker/internal/grpc/server"
	"github.com/magabrotheeeer/health-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/metrics"
	"github.com/magabrotheeeer/health-tracker/internal/migrations"
	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/objectstore"
	"github.com/magabrotheeeer/health-tracker/internal/revocation"
	authservice "github.com/magabrotheeeer/health-tracker/internal/services/auth"
	healthservice "github.com/magabrotheeeer/health-tracker/internal/services/health"
	symptomservice "github.com/magabrotheeeer/health-tracker/internal/services/symptoms"
	userservice "github.com/magabrotheeeer/health-tracker/internal/services/users"
	"github.com/magabrotheeeer/health-tracker/internal/storage/mongodb"
	"github.com/magabrotheeeer/health-tracker/internal/storage/postgresql"
)

const (
	shutdownTimeout = 15 * time.Second
	probeInterval   = 10 * time.Second
)

// Store объединяет репозитории всех сервисов. Его реализуют mongodb.Storage и postgresql.Storage.
type Store interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	EnsureUser(ctx context.Context, user models.User) (bool, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)

	CreateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error)
	GetHealthRecord(ctx context.Context, userID, date string) (*models.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, userID, date string) error
	DeleteHealthRecords(ctx context.Context, userID string, ids []string) (int64, error)
	ListHealthRecords(ctx context.Context, userID string, q models.ListQuery) ([]models.HealthRecord, int64, error)
	HealthRecordsInRange(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error)
	ExistingDates(ctx context.Context, userID string, dates []string) ([]string, error)
	InsertHealthRecords(ctx context.Context, records []models.HealthRecord) error

	CreateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error)
	GetSymptom(ctx context.Context, userID, id string) (*models.Symptom, error)
	ListSymptoms(ctx context.Context, userID string) ([]models.Symptom, error)
	UpdateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error)
	DeleteSymptom(ctx context.Context, userID, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*mongodb.Storage)(nil)
	_ Store = (*postgresql.Storage)(nil)
)

// Services набор бизнес-сервисов, которые обслуживают маршруты.
type Services struct {
	Auth     *authservice.AuthService
	Users    *userservice.UserService
	Health   *healthservice.HealthService
	Symptoms *symptomservice.SymptomService
}

type App struct {
	server     *http.Server
	grpcHealth *grpcserver.HealthServer
	logger     *slog.Logger
	store      Store
	cache      *cache.Cache
	publisher  events.Publisher
}

// OpenStore подключается к выбранному в конфиге хранилищу.
// Для PostgreSQL перед работой применяются миграции.
func OpenStore(ctx context.Context, cfg config.Storage) (Store, error) {
	const op = "healthtracker.OpenStore"

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgresql.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return db, nil
	case config.DriverMongoDB:
		db, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Driver)
	}
}

// NewPublisher подключается к RabbitMQ, если задан URL, иначе события отбрасываются.
func NewPublisher(cfg config.RabbitMQ, logger *slog.Logger) (events.Publisher, error) {
	if cfg.URL == "" {
		logger.Info("rabbitmq url is not set, domain events are disabled")
		return events.Noop{}, nil
	}
	conn, err := events.Connect(cfg.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	publisher, err := events.NewAMQPPublisher(conn, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return publisher, nil
}

// NewServices создаёт сервисы поверх общих зависимостей.
func NewServices(store Store, c *cache.Cache, publisher events.Publisher, files objectstore.Store, jwtMaker jwt.Maker, logger *slog.Logger) *Services {
	return &Services{
		Auth:     authservice.NewAuthService(store, jwtMaker, revocation.New(c), publisher, logger),
		Users:    userservice.NewUserService(store, files, logger),
		Health:   healthservice.NewHealthService(store, c, publisher, validation.New(), logger),
		Symptoms: symptomservice.NewSymptomService(store, logger),
	}
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	publisher, err := NewPublisher(cfg.RabbitMQ, logger)
	if err != nil {
		_ = store.Close(ctx)
		_ = cacheRedis.Close()
		return nil, err
	}

	files, err := objectstore.New(ctx, cfg.ObjectStorage)
	if err != nil {
		_ = store.Close(ctx)
		_ = cacheRedis.Close()
		_ = publisher.Close()
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	services := NewServices(store, cacheRedis, publisher, files, jwtMaker, logger)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := services.Auth.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			logger.Error("failed to seed admin", sl.Err(err))
		} else if created {
			logger.Info("admin user created", slog.String("email", cfg.Admin.Email))
		}
	}

	checks := map[string]Pinger{
		"storage": store,
		"cache":   cacheRedis,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, RouterDeps{
		Logger:   logger,
		Services: services,
		Metrics:  metrics.New(),
		Files:    files,
		Checks:   checks,
		Limits:   cfg.RateLimit,
		Debug:    cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	app := &App{
		server:    srv,
		logger:    logger,
		store:     store,
		cache:     cacheRedis,
		publisher: publisher,
	}

	if cfg.GRPCHealthAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCHealthAddress)
		if err != nil {
			app.close(ctx)
			return nil, fmt.Errorf("healthtracker.New: grpc health listener: %w", err)
		}
		grpcChecks := make(map[string]grpcserver.Pinger, len(checks))
		for name, p := range checks {
			grpcChecks[name] = p
		}
		app.grpcHealth = grpcserver.NewHealthServer(lis, grpcChecks, probeInterval, logger)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	grpcCtx, stopGRPC := context.WithCancel(ctx)
	defer stopGRPC()
	if a.grpcHealth != nil {
		go func() {
			if err := a.grpcHealth.Run(grpcCtx); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case err := <-errCh:
		stopGRPC()
		a.close(context.Background())
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		stopGRPC()
		a.close(timeoutCtx)
		return err
	}
}

func (a *App) close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
	if err := a.publisher.Close(); err != nil {
		a.logger.Error("failed to close event publisher", sl.Err(err))
	}
}
