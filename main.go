package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"notable/auth"
	"notable/config"
	"notable/handler"
	"notable/middleware"
	"notable/repository"
	"notable/usecase"
)

func setupRouter(cfg *config.Config, client *mongo.Client) *gin.Engine {
	userRepo := repository.NewUserRepo(client, cfg)
	noteRepo := repository.NewNoteRepo(client, cfg)
	tagRepo := repository.NewTagRepo(client, cfg)

	tokenService := auth.NewTokenService(cfg)
	bearer := auth.NewBearerStrategy(tokenService, userRepo)

	authHandler := handler.NewAuthHandler(usecase.NewAuthService(userRepo, tokenService))
	noteHandler := handler.NewNoteHandler(usecase.NewNoteService(noteRepo, tagRepo))
	tagHandler := handler.NewTagHandler(usecase.NewTagService(tagRepo))
	userHandler := handler.NewUserHandler(usecase.NewUserService(userRepo))
	statsHandler := handler.NewStatsHandler()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	requireAuth := middleware.RequireAuth(bearer)

	// Liveness and observability
	router.GET("/ping", handler.Ping)
	router.GET("/secured/ping", requireAuth, handler.SecuredPing)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api/auth")
	{
		public.POST("/signin", authHandler.Signin)
		public.POST("/signup", authHandler.Signup)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(requireAuth)
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)
			notes.GET("/:id", noteHandler.GetNote)
			notes.GET("/:id/tags", noteHandler.GetNoteTags)
			notes.POST("", noteHandler.CreateNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", tagHandler.CreateTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		// The signed-in user's own record
		user := protected.Group("/user")
		{
			user.GET("/profile", userHandler.GetProfile)
			user.PUT("/profile", userHandler.UpdateProfile)
			user.PUT("/password", userHandler.ChangePassword)
		}

		protected.GET("/stats", statsHandler.GetStats)
	}

	return router
}

func main() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	client, err := repository.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := repository.Disconnect(ctx, client); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := repository.NewUserRepo(client, cfg).EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure user indexes: %v", err)
	}

	router := setupRouter(cfg, client)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)

	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		err = router.RunTLS(serverAddr, cfg.TLSCert, cfg.TLSKey)
	} else {
		err = router.Run(serverAddr)
	}
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
