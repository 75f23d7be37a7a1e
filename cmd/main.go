package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"shopnet/internal/app/market/config"
	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/handler"
	"shopnet/internal/app/market/infrastructure/messaging"
	"shopnet/internal/app/market/repository"
	"shopnet/internal/app/market/service"
	"shopnet/internal/app/market/util"
	"shopnet/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init("market-service", logLevel)

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("Connected to PostgreSQL")

	if err := migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redisClient, err := util.NewRedisClient(
		cfg.Redis.Address(),
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("address", cfg.Redis.Address()).Msg("Connected to Redis")

	// Уведомления идут через асинхронный producer: оформление заказа
	// не ждет подтверждения брокера
	notificationsProducer := messaging.NewAsyncKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer notificationsProducer.Close()

	catalogProducer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.CatalogTopic)
	defer catalogProducer.Close()
	logger.Info().
		Str("notifications_topic", cfg.Kafka.NotificationsTopic).
		Str("catalog_topic", cfg.Kafka.CatalogTopic).
		Msg("Initialized Kafka producers")

	shopRepo := repository.NewShopRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	contactRepo := repository.NewContactRepository(db)

	importService := service.NewImportService(catalogRepo, redisClient, catalogProducer, cfg.Import.FeedTimeout)
	catalogService := service.NewCatalogService(catalogRepo, shopRepo, redisClient)
	shopService := service.NewShopService(shopRepo, redisClient)
	basketService := service.NewBasketService(orderRepo, orderItemRepo)
	orderService := service.NewOrderService(orderRepo, notificationsProducer, cfg.Import.NotificationDelay)
	contactService := service.NewContactService(contactRepo)

	authMiddleware := handler.NewAuthMiddleware(cfg.JWT.Secret)
	basketHandler := handler.NewBasketHandler(basketService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	partnerHandler := handler.NewPartnerHandler(importService, shopService, orderService)
	contactHandler := handler.NewContactHandler(contactService)

	router := handler.SetupRoutes(
		basketHandler,
		orderHandler,
		catalogHandler,
		partnerHandler,
		contactHandler,
		authMiddleware,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting Market Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Market Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Market Service stopped gracefully")
}

// connectDB подключается к PostgreSQL через GORM с повторными попытками
// TranslateError нужен, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey
func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	var db *gorm.DB
	var err error

	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else {
				pingErr := sqlDB.Ping()
				if pingErr != nil {
					err = pingErr
				} else {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(5)
					sqlDB.SetConnMaxLifetime(5 * time.Minute)
					sqlDB.SetConnMaxIdleTime(1 * time.Minute)
					return db, nil
				}
			}
		}
		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to database, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect after 10 attempts: %w", err)
}

// migrate создает таблицы по GORM моделям
// Порядок важен: ссылочные таблицы идут после тех, на кого ссылаются
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Shop{},
		&entity.Product{},
		&entity.ProductInfo{},
		&entity.Parameter{},
		&entity.ProductParameter{},
		&entity.Contact{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
