package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"fanhub/database"
	"fanhub/internal/config"
	"fanhub/internal/http-api/handler"
	"fanhub/internal/http-api/middleware"
	"fanhub/internal/http-api/repository"
	"fanhub/internal/http-api/service"
	"fanhub/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zlog, err := logger.New(cfg.GoEnv)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.ConnectDB(cfg, zlog)
	if err != nil {
		zlog.Fatalw("database connection failed", "error", err)
	}

	// Repositories
	showRepo := repository.NewShowRepo(db)
	characterRepo := repository.NewCharacterRepo(db)
	episodeRepo := repository.NewEpisodeRepo(db)
	quoteRepo := repository.NewQuoteRepo(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	showSvc := service.NewShowService(showRepo)
	characterSvc := service.NewCharacterService(characterRepo)
	episodeSvc := service.NewEpisodeService(episodeRepo)
	quoteSvc := service.NewQuoteService(quoteRepo)
	authSvc := service.NewAuthService(userRepo)

	// Handlers
	showHandler := handler.NewShowHandler(showSvc)
	characterHandler := handler.NewCharacterHandler(characterSvc)
	episodeHandler := handler.NewEpisodeHandler(episodeSvc)
	quoteHandler := handler.NewQuoteHandler(quoteSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	// parses tokens when present but gates nothing; see middleware.BearerClaims
	r.Use(middleware.BearerClaims(cfg.JWTSecret))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	showHandler.RegisterRoutes(api.Group("/shows"))
	characterHandler.RegisterRoutes(api.Group("/characters"))
	episodeHandler.RegisterRoutes(api.Group("/episodes"))
	quoteHandler.RegisterRoutes(api.Group("/quotes"))

	// auth lives outside the /api prefix
	authHandler.RegisterRoutes(r.Group("/auth"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	zlog.Infow("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		zlog.Fatalw("server exited", "error", err)
	}
}
