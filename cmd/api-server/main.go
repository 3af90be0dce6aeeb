package main

import (
	"fmt"
	"log"
	"net/http"

	"gameshelf/internal/config"
	"gameshelf/internal/database"
	"gameshelf/internal/handler"
	"gameshelf/internal/middleware"
	"gameshelf/internal/repository"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Redis is optional: without it, logout is a stateless acknowledgment.
	var denylist repository.TokenDenylist
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		denylist = repository.NewRedisTokenDenylist(redis.NewClient(opts))
		log.Println("Token denylist enabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, denylist, cfg)
	gameService := service.NewGameService(gameRepo)
	reviewService := service.NewReviewService(reviewRepo, gameRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	gameHandler := handler.NewGameHandler(gameService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	requireAuth := middleware.RequireAuth(authService)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "server is up and running"})
		})

		authHandler.RegisterRoutes(api, requireAuth)
		gameHandler.RegisterRoutes(api, requireAuth)
		reviewHandler.RegisterRoutes(api, requireAuth)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	fmt.Println("Server running at", addr)
	log.Fatal(router.Run(addr))
}
