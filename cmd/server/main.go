package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "recipehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipehub/internal/auth"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/handler"
	"recipehub/internal/repository"
	"recipehub/internal/router"
	"recipehub/internal/service"
)

// @title Recipe Sharing API
// @version 1.0
// @description Recipe sharing API with comments, user accounts, and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	recipeRepo := repository.NewRecipeRepository(database)
	commentRepo := repository.NewCommentRepository(database)

	// Initialize auth components
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("jwt init: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	recipeService := service.NewRecipeService(recipeRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, recipeRepo)
	userService := service.NewUserService(userRepo, recipeRepo, commentRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		recipeHandler,
		commentHandler,
		userHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
