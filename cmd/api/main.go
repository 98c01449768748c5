package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mainakibe/printdesk-api/internal/application/service"
	"github.com/mainakibe/printdesk-api/internal/config"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/internal/infrastructure/database"
	infraRepo "github.com/mainakibe/printdesk-api/internal/infrastructure/repository"
	"github.com/mainakibe/printdesk-api/internal/infrastructure/repository/memory"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/handler"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/routes"
	"go.uber.org/zap"
)

// repositories groups every store behind its domain interface so the rest of
// main does not care whether it is talking to Postgres or the memory driver.
type repositories struct {
	Product     repository.ProductRepository
	Category    repository.CategoryRepository
	Order       repository.OrderRepository
	Payment     repository.PartialPaymentRepository
	Depot       repository.DepotStockRepository
	Plan        repository.LogisticsPlanRepository
	Need        repository.ManualNeedRepository
	Writing     repository.UnpaidWritingRepository
	Note        repository.NoteRepository
	Idempotency repository.IdempotencyRepository
}

func newPostgresRepositories(cfg *config.Config) (*repositories, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	return &repositories{
		Product:     infraRepo.NewProductRepository(db),
		Category:    infraRepo.NewCategoryRepository(db),
		Order:       infraRepo.NewOrderRepository(db),
		Payment:     infraRepo.NewPartialPaymentRepository(db),
		Depot:       infraRepo.NewDepotStockRepository(db),
		Plan:        infraRepo.NewLogisticsPlanRepository(db),
		Need:        infraRepo.NewManualNeedRepository(db),
		Writing:     infraRepo.NewUnpaidWritingRepository(db),
		Note:        infraRepo.NewNoteRepository(db),
		Idempotency: infraRepo.NewIdempotencyRepository(db),
	}, nil
}

// newMemoryRepositories wires the in-memory stores. Useful for demos and
// local frontend work where a Postgres instance is overkill.
func newMemoryRepositories() *repositories {
	return &repositories{
		Product:     memory.NewProductRepository(),
		Category:    memory.NewCategoryRepository(),
		Order:       memory.NewOrderRepository(),
		Payment:     memory.NewPartialPaymentRepository(),
		Depot:       memory.NewDepotStockRepository(),
		Plan:        memory.NewLogisticsPlanRepository(),
		Need:        memory.NewManualNeedRepository(),
		Writing:     memory.NewUnpaidWritingRepository(),
		Note:        memory.NewNoteRepository(),
		Idempotency: memory.NewIdempotencyRepository(),
	}
}

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var repos *repositories
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("using in-memory stores, data will not survive a restart")
		repos = newMemoryRepositories()
	default:
		repos, err = newPostgresRepositories(cfg)
		if err != nil {
			logger.Fatal("database setup failed", zap.Error(err))
		}
	}

	// Services
	stockService := service.NewStockService(repos.Product, repos.Depot, repos.Plan)
	productService := service.NewProductService(repos.Product, stockService)
	categoryService := service.NewCategoryService(repos.Category)
	orderService := service.NewOrderService(repos.Order, repos.Product, repos.Payment, stockService)
	requirementService := service.NewRequirementService(repos.Order, repos.Product, repos.Depot, repos.Plan).
		WithDepotNames(cfg.Depots.DepotAName, cfg.Depots.DepotBName)
	ledgerService := service.NewLedgerService(repos.Need, repos.Writing, repos.Note, repos.Order, repos.Category)
	dashboardService := service.NewDashboardService(repos.Order, repos.Product, repos.Writing)

	// Handlers
	handlers := &routes.Handlers{
		Product:     handler.NewProductHandler(productService),
		Category:    handler.NewCategoryHandler(categoryService),
		Order:       handler.NewOrderHandler(orderService, ledgerService),
		Requirement: handler.NewRequirementHandler(requirementService, stockService),
		Ledger:      handler.NewLedgerHandler(ledgerService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: repos.Idempotency,
	})

	logger.Info("starting server",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
