package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"platzistore/internal/config"
	"platzistore/internal/logging"
	"platzistore/internal/models"
	"platzistore/internal/repositories"
	"platzistore/internal/services"
	"platzistore/pkg/rabbitmq"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	if err := config.LoadEnvFiles(".env", os.Getenv("ENV_FILE")); err != nil {
		log.Fatalf("Failed to load env files: %v", err)
	}
	v := viper.New()
	config.SetDefaults(v)
	v.AutomaticEnv()

	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	if cfg.SeedProducts {
		n := seedProducts(ctx, st.products, logger)
		logger.Info("seeded products", zap.Int("count", n))
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger)
		if err != nil {
			logger.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient

		err = mqClient.ConsumeProductEvents(func(event models.ProductEvent) error {
			logger.Info("product event",
				zap.String("type", event.Type),
				zap.String("product_id", event.ProductID),
				zap.Time("occurred_at", event.OccurredAt),
			)
			return nil
		})
		if err != nil {
			logger.Warn("failed to start product event consumer", zap.Error(err))
		}
	}

	// --- Services ---
	productService := services.NewProductService(st.products, publisher, logger)
	authService := services.NewAuthService(
		st.users,
		repositories.NewStaticAPIKeyRepository(cfg.AdminAPIKeyToken, cfg.PublicAPIKeyToken),
		cfg.JWTSecret,
		cfg.TokenTTL,
	)

	app := newApp(appDeps{
		APIPrefix:      cfg.APIPrefix,
		ReceiptPath:    cfg.ReceiptPath,
		ProductService: productService,
		AuthService:    authService,
		Logger:         logger,
		AccessLog:      true,
	})

	// --- Start HTTP Server ---
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := app.Listen(cfg.Port); err != nil {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Warn("error during fiber shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}
