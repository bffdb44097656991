package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Storefront/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Router struct {
	userHandler    *UserHandler
	productHandler *ProductHandler
	healthHandler  *HealthHandler
	userUsecase    usecasecontract.IUserUseCase
	logger         *zerolog.Logger
	rateLimit      float64
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, productUsecase usecasecontract.IProductUseCase, db Pinger, logger *zerolog.Logger, rateLimit float64) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		productHandler: NewProductHandler(productUsecase),
		healthHandler:  NewHealthHandler(db),
		userUsecase:    userUsecase,
		logger:         logger,
		rateLimit:      rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	if r.rateLimit > 0 {
		lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", r.healthHandler.Healthz)

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
	}

	products := v1.Group("/products")
	{
		products.GET("", r.productHandler.ListProductsHandler)
		products.GET("/:productID", r.productHandler.GetProductHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		protected.POST("/products", r.productHandler.CreateProductHandler)
		protected.POST("/products/:productID/like", r.productHandler.LikeProductHandler)
		protected.POST("/products/:productID/dislike", r.productHandler.DislikeProductHandler)
		protected.GET("/products/:productID/reaction", r.productHandler.GetReactionHandler)
	}
}
