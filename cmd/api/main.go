package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	handlerHttp "github.com/mikiasgoitom/Storefront/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Storefront/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/config"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/database"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Storefront/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/store"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Storefront/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("info", "json").Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		appLogger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Errorf("failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := mongoClient.Client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("failed to ensure indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection))
	productRepo := mongodb.NewProductRepository(db.Collection(database.ProductsCollection))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.GetAccessTokenExpiry()))
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	productUsecase := usecase.NewProductUsecase(productRepo, userRepo, uuidGenerator, appValidator, appLogger)

	// Optional Dependency Injection: Redis cache
	if cfg.Redis.URL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			appLogger.Warnf("redis unavailable, product cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			productUsecase.SetProductCache(store.NewProductCacheStore(rdb, cfg.GetProductCacheTTL()))
		}
	}

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	handlerHttp.NewRouter(userUsecase, productUsecase, mongoClient, appLogger.Zerolog(), cfg.RateLimit).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("server running on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
