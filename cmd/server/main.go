package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/config"
	"github.com/nojimad/collab-todo/internal/database"
	"github.com/nojimad/collab-todo/internal/handlers"
	"github.com/nojimad/collab-todo/internal/repository"
	"github.com/nojimad/collab-todo/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Setup session store with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})

	// Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	clanRepo := repository.NewClanRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	clanService := services.NewClanService(clanRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	clanHandler := handlers.NewClanHandler(clanService, authService)
	taskHandler := handlers.NewTaskHandler(taskService, authService)

	r := handlers.NewRouter(store, authHandler, clanHandler, taskHandler, taskRepo)

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
