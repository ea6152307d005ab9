package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	allocationapp "github.com/adityapras/wms/application/allocation"
	inventoryapp "github.com/adityapras/wms/application/inventory"
	ledgerapp "github.com/adityapras/wms/application/ledger"
	userapp "github.com/adityapras/wms/application/user"
	"github.com/adityapras/wms/cmd/config"
	redisclient "github.com/adityapras/wms/cmd/redis"
	_ "github.com/adityapras/wms/docs"
	documentRepo "github.com/adityapras/wms/repository/document"
	itemRepo "github.com/adityapras/wms/repository/item"
	movementRepo "github.com/adityapras/wms/repository/movement"
	quantRepo "github.com/adityapras/wms/repository/quant"
	redisRepo "github.com/adityapras/wms/repository/redis"
	txRepo "github.com/adityapras/wms/repository/tx"
	userRepo "github.com/adityapras/wms/repository/user"
	"github.com/adityapras/wms/thirdparty/rabbitmq"
	"github.com/adityapras/wms/transport"
	"github.com/adityapras/wms/utils/logger"
)

// @title WMS API
// @version 1.0
// @description Warehouse stock ledger and allocation API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for stock movement events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq publisher, continuing without events", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	QuantRepo := quantRepo.NewQuantRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	DocumentRepo := documentRepo.NewDocumentRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Ledger := ledgerapp.NewStockLedger(TxRepo, QuantRepo, MovementRepo, publisher)
	Allocation := allocationapp.NewAllocationEngine(TxRepo, DocumentRepo, QuantRepo, ItemRepo, Ledger)
	Inventory := inventoryapp.NewInventoryApp(QuantRepo, ItemRepo, DocumentRepo, MovementRepo, RedisRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)

	httpTransport := transport.NewTransport(UserApp, Ledger, Allocation, Inventory, cfg.Auth.InternalAPIKey)

	// ERP receipt consumer relays inbound receipts to the internal endpoint
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Auth.InternalAPIURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Warn("err connect rabbitmq consumer, continuing without ERP receipts", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(consumerCtx); err != nil {
			logger.Fatal("err start erp receipt consumer", zap.Error(err))
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
