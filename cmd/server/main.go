package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"laundrylink.backend/internal/config"
	"laundrylink.backend/internal/infrastructure/jobs"
	"laundrylink.backend/internal/infrastructure/repositories"
	"laundrylink.backend/internal/interfaces/http/handlers"
	"laundrylink.backend/internal/interfaces/http/middleware"
	"laundrylink.backend/internal/usecases"
	"laundrylink.backend/pkg/jwt"
	"laundrylink.backend/pkg/logger"
	"laundrylink.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	productRepo := repositories.NewProductRepository(db)
	shopOrderRepo := repositories.NewShopOrderRepository(db)
	priceRuleRepo := repositories.NewPriceRuleRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, userRepo)
	discoveryUsecase := usecases.NewDiscoveryUsecase(merchantRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, merchantRepo, quoteRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, orderRepo, merchantRepo, cfg.Booking.DraftTTL)
	pricingUsecase := usecases.NewPricingUsecase(priceRuleRepo, quoteRepo, cfg.Booking.QuoteValidity)
	shopUsecase := usecases.NewShopUsecase(productRepo, shopOrderRepo, uow)
	receiptUsecase := usecases.NewReceiptUsecase(orderUsecase, merchantRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase, discoveryUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase, merchantUsecase, receiptUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase, merchantUsecase)
	shopHandler := handlers.NewShopHandler(shopUsecase)
	pricingHandler := handlers.NewPricingHandler(pricingUsecase)
	adminHandler := handlers.NewAdminHandler(userRepo, shopOrderRepo, merchantUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quoteExpiryJob := jobs.NewQuoteExpiryJob(quoteRepo)
	go quoteExpiryJob.Start(ctx)

	healthProbeJob := jobs.NewHealthProbeJob(db)
	go healthProbeJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoutes(r, db)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		merchantHandler: merchantHandler,
		orderHandler:    orderHandler,
		bookingHandler:  bookingHandler,
		shopHandler:     shopHandler,
		pricingHandler:  pricingHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		quoteExpiryJob.Stop()
		healthProbeJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 LaundryLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
