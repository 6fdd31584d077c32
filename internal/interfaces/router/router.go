package router

import (
	"offsetledger-backend/internal/application/batches"
	"offsetledger-backend/internal/application/credits"
	"offsetledger-backend/internal/application/payments"
	"offsetledger-backend/internal/application/registry"
	"offsetledger-backend/internal/application/retirements"
	"offsetledger-backend/internal/application/verification"
	"offsetledger-backend/internal/application/verifiers"
	"offsetledger-backend/internal/auth"
	"offsetledger-backend/internal/config"
	"offsetledger-backend/internal/health"
	"offsetledger-backend/internal/infrastructure/cache"
	"offsetledger-backend/internal/infrastructure/database"
	batchhandler "offsetledger-backend/internal/interfaces/handlers/batches"
	credhandler "offsetledger-backend/internal/interfaces/handlers/credits"
	payhandler "offsetledger-backend/internal/interfaces/handlers/payments"
	reghandler "offsetledger-backend/internal/interfaces/handlers/registry"
	rethandler "offsetledger-backend/internal/interfaces/handlers/retirements"
	verifhandler "offsetledger-backend/internal/interfaces/handlers/verification"
	verhandler "offsetledger-backend/internal/interfaces/handlers/verifiers"
	"offsetledger-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp opens the DB and Redis from config and builds the Fiber app.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	app := BuildApp(cfg, db, rdb)
	return app, db, rdb, nil
}

// BuildApp assembles middleware, services and routes over the given DB and
// Redis client (either may be nil; dependent routes are skipped).
func BuildApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))
	app.Use(middleware.Identity())
	if rdb != nil {
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(middleware.ResponseFormatter())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &health.Handlers{
		Rdb:            rdb,
		DB:             &gormDBPinger{db: db},
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.JSON)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	if db == nil {
		return app
	}

	admins := auth.NewConfigAdmins(cfg.AdminAccounts)
	snapshots := &cache.Snapshots{Rdb: rdb}

	gateway := &payments.Service{DB: db}

	regs := &registry.Service{DB: db}
	regh := &reghandler.Handlers{Service: regs, Cache: snapshots}
	app.Post("/api/v1/projects", regh.Register)
	app.Get("/api/v1/projects", regh.List)
	app.Get("/api/v1/projects/:id", regh.Get)

	vers := &verifiers.Service{DB: db, Admins: admins}
	verh := &verhandler.Handlers{Service: vers}
	vg := app.Group("/api/v1/verifiers")
	vg.Post("/", verh.Authorize)
	vg.Get("/:id", verh.Get)
	vg.Get("/:id/active", verh.IsActive)
	vg.Post("/:id/deactivate", verh.Deactivate)

	verifs := &verification.Service{DB: db}
	verifh := &verifhandler.Handlers{Service: verifs, Cache: snapshots}
	app.Post("/api/v1/projects/:id/verifications", verifh.Verify)
	app.Get("/api/v1/projects/:id/verifications", verifh.ListByProject)
	app.Get("/api/v1/projects/:id/verifications/:seq", verifh.Get)

	bats := &batches.Service{DB: db}
	bath := &batchhandler.Handlers{Service: bats, Cache: snapshots}
	app.Post("/api/v1/batches", bath.Create)
	app.Get("/api/v1/batches/:id", bath.Get)
	app.Get("/api/v1/projects/:id/batches", bath.ListByProject)

	creds := &credits.Service{DB: db, Gateway: gateway}
	credh := &credhandler.Handlers{Service: creds}
	cg := app.Group("/api/v1/credits")
	cg.Post("/purchase", credh.Purchase)
	cg.Post("/transfer", credh.Transfer)
	cg.Get("/balance", credh.Balance)
	cg.Get("/holdings", credh.Holdings)

	rets := &retirements.Service{DB: db, Admins: admins}
	reth := &rethandler.Handlers{Service: rets, Cache: snapshots}
	app.Post("/api/v1/retirements", reth.Retire)
	app.Get("/api/v1/retirements", reth.ListByAccount)
	app.Get("/api/v1/retirements/:id", reth.Get)
	app.Post("/api/v1/retirements/:id/certificate", reth.IssueCertificate)

	payh := &payhandler.Handlers{Service: gateway}
	ag := app.Group("/api/v1/accounts")
	ag.Post("/deposit", payh.Deposit)
	ag.Get("/balance", payh.Balance)

	return app
}
