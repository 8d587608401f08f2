// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"goldvault/internal/api"
	"goldvault/internal/api/handler"
	"goldvault/internal/cache"
	"goldvault/internal/config"
	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/repository/postgres"
	"goldvault/internal/seed"
	"goldvault/internal/service"
	"goldvault/internal/upstream"
	"goldvault/internal/util"
	"goldvault/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository      repository.UserRepository
	SessionRepository   repository.SessionRepository
	GoldPriceRepository repository.GoldPriceRepository
	OrderRepository     repository.OrderRepository
	PortfolioRepository repository.PortfolioRepository
	VoucherRepository   repository.VoucherRepository
	CatalogRepository   repository.CatalogRepository

	// Services
	AuthService      service.AuthService
	PriceService     service.PriceService
	PortfolioService service.PortfolioService
	OrderService     service.OrderService
	VoucherService   service.VoucherService
	CatalogService   service.CatalogService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply schema
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.Migrate(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.SessionRepository = postgres.NewSessionRepository(app.DB)
	app.GoldPriceRepository = postgres.NewGoldPriceRepository(app.DB)
	app.OrderRepository = postgres.NewOrderRepository(app.DB)
	app.PortfolioRepository = postgres.NewPortfolioRepository(app.DB)
	app.VoucherRepository = postgres.NewVoucherRepository(app.DB)
	app.CatalogRepository = postgres.NewCatalogRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Seed fixtures once, before the server takes reads
	if err := seed.EnsureSeeded(ctx, app.DB, app.CatalogRepository, app.Logger); err != nil {
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}

	// 6. Initialize upstream clients and price caches
	goldFeed := upstream.NewGoldFeed(app.Config.GoldAPIURL)
	rateFeed := upstream.NewRateFeed(app.Config.ExchangeAPIURL)
	identity := upstream.NewIdentityProvider(app.Config.AuthAPIURL)

	snapshotCache := cache.NewSnapshotCache(app.DB, app.GoldPriceRepository, service.SnapshotWindow)
	liveCache := cache.NewMemory[domain.LiveGoldPrice](service.LivePriceWindow)

	// 7. Initialize Services
	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, app.SessionRepository, app.PortfolioRepository, identity)
	app.PriceService = service.NewPriceService(app.DB, app.GoldPriceRepository, snapshotCache, liveCache, goldFeed, rateFeed, app.Logger)
	app.PortfolioService = service.NewPortfolioService(app.DB, app.PortfolioRepository, app.PriceService)
	app.OrderService = service.NewOrderService(app.DB, app.OrderRepository, app.PortfolioRepository)
	app.VoucherService = service.NewVoucherService(app.DB, app.VoucherRepository)
	app.CatalogService = service.NewCatalogService(app.DB, app.CatalogRepository)
	app.Logger.Info("Services initialized.")

	// 8. Initialize HTTP Handlers and Router
	app.HTTPHandler = api.NewRouter(api.Deps{
		Auth:           handler.NewAuthHandler(app.AuthService, app.Logger),
		Price:          handler.NewPriceHandler(app.PriceService, app.Logger),
		Order:          handler.NewOrderHandler(app.OrderService, app.Logger),
		Portfolio:      handler.NewPortfolioHandler(app.PortfolioService, app.Logger),
		Voucher:        handler.NewVoucherHandler(app.VoucherService, app.Logger),
		Catalog:        handler.NewCatalogHandler(app.CatalogService, app.Logger),
		AuthService:    app.AuthService,
		AllowedOrigins: app.Config.AllowedOrigins,
		Logger:         app.Logger,
	})
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
