// Package bootstrap assembles the application: configuration, logging,
// infrastructure handles, repositories, services, handlers and the HTTP
// server, with an explicit lifecycle instead of package-global state.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	httpHandler "github.com/ilumaty/greendog-backend/internal/handler/http"
	"github.com/ilumaty/greendog-backend/internal/infra/persistence/mongodb"
	"github.com/ilumaty/greendog-backend/internal/infra/setup"
	"github.com/ilumaty/greendog-backend/internal/middleware"
	"github.com/ilumaty/greendog-backend/internal/service"
)

// Config holds everything read from the environment at startup.
type Config struct {
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTExpiryHours    int
	ServerPort        string
	LogLevel          string
	AppEnv            string
	CORSAllowedOrigin string
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

// LoadConfig reads configuration from the environment, preferring a .env
// file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:          os.Getenv("MONGODB_URI"),
		MongoDB:           os.Getenv("MONGODB_DB"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		JWTExpiryHours:    24,
		RateLimitMax:      100,
		RateLimitWindow:   1 * time.Second,
	}
	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	if v, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS")); err == nil && v > 0 {
		cfg.JWTExpiryHours = v
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "greendog"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("environment variable MONGODB_URI must be set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App owns every component and its lifecycle.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	MongoClient *mongo.Client
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp builds and wires all components.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(logLevel)
	log.Info("Configuration loaded")

	log.Info("Initializing infrastructure...")
	startupCtx := context.Background()
	mongoClient, db, err := setup.InitMongo(startupCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init MongoDB: %w", err)
	}
	log.Info("MongoDB connected")

	if err := setup.EnsureIndexes(startupCtx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	log.Info("Indexes ensured")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis connected")

	log.Info("Initializing repositories...")
	userRepo := mongodb.NewMongoUserRepository(db)
	breedRepo := mongodb.NewMongoBreedRepository(db)
	postRepo := mongodb.NewMongoPostRepository(db)
	commentRepo := mongodb.NewMongoCommentRepository(db)

	log.Info("Initializing services...")
	authService, err := service.NewAuthService(userRepo, breedRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	catalogService := service.NewCatalogService(breedRepo)
	favoritesService := service.NewFavoritesService(userRepo, breedRepo)
	contentService := service.NewContentService(postRepo, commentRepo, userRepo, breedRepo)

	log.Info("Initializing handlers...")
	authHandler := httpHandler.NewAuthHandler(authService)
	catalogHandler := httpHandler.NewCatalogHandler(catalogService)
	favoritesHandler := httpHandler.NewFavoritesHandler(favoritesService)
	contentHandler := httpHandler.NewContentHandler(contentService)

	log.Info("Setting up router...")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg.CORSAllowedOrigin))

	router.GET("/health", httpHandler.Health(mongoClient, cfg.AppEnv))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	authGate := middleware.Auth(cfg.JWTSecret)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/profile", authGate, authHandler.Profile)
		authRoutes.PUT("/profile", authGate, authHandler.UpdateProfile)
		authRoutes.POST("/change-password", authGate, authHandler.ChangePassword)
		authRoutes.POST("/logout", authGate, authHandler.Logout)
	}

	dogsRoutes := api.Group("/dogs")
	{
		dogsRoutes.GET("/breeds", catalogHandler.List)
		dogsRoutes.POST("/breeds/search", catalogHandler.Search)
		dogsRoutes.POST("/breeds/filter", catalogHandler.Filter)
		dogsRoutes.GET("/breeds/:id", catalogHandler.GetByID)

		dogsRoutes.POST("/breeds", authGate, middleware.RequireAdmin(), catalogHandler.Create)
		dogsRoutes.PUT("/breeds/:id", authGate, middleware.RequireAdmin(), catalogHandler.Update)
		dogsRoutes.DELETE("/breeds/:id", authGate, middleware.RequireAdmin(), catalogHandler.Delete)

		dogsRoutes.GET("/favorites", authGate, favoritesHandler.List)
		dogsRoutes.POST("/favorites/:breedId", authGate, favoritesHandler.Add)
		dogsRoutes.DELETE("/favorites/:breedId", authGate, favoritesHandler.Remove)
	}

	postsRoutes := api.Group("/posts")
	{
		postsRoutes.GET("", contentHandler.ListPosts)
		postsRoutes.POST("", authGate, contentHandler.CreatePost)
		postsRoutes.GET("/:id", contentHandler.GetPost)
		postsRoutes.PUT("/:id", authGate, contentHandler.UpdatePost)
		postsRoutes.DELETE("/:id", authGate, contentHandler.DeletePost)
		postsRoutes.GET("/:id/comments", contentHandler.ListComments)
		postsRoutes.POST("/:id/comments", authGate, contentHandler.AddComment)
		postsRoutes.PUT("/:id/comments/:commentId", authGate, contentHandler.UpdateComment)
		postsRoutes.DELETE("/:id/comments/:commentId", authGate, contentHandler.DeleteComment)
	}

	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		MongoClient: mongoClient,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}, nil
}

// Start launches the HTTP server.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server listening on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening")
	}()
}

// Shutdown drains the HTTP server and closes the store connections.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed")
		}
	}

	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(context.Background()); err != nil {
			a.Log.Errorf("Error disconnecting MongoDB: %v", err)
		} else {
			a.Log.Info("MongoDB disconnected")
		}
	}

	a.Log.Info("Application shutdown complete")
}

// LoggerMiddleware logs each handled request with its status and latency.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
