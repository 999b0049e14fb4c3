package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/homestock/homestock/internal/db"
	"github.com/homestock/homestock/internal/handlers"
	"github.com/homestock/homestock/internal/jwt"
	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/middlewares"
	"github.com/homestock/homestock/internal/repositories"
	"github.com/homestock/homestock/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title homestock API
// @version 1.0.0
// @description Household inventory tracker: areas, categories and per-user items
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "homestock")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config, 24h expiry by default
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger and database, wires repositories, services and
// handlers, and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL and apply migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	database, err := db.Open(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error: ", err)
	}
	defer database.Close()

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(database)
	userWriteRepo := repositories.NewUserWriteRepository(database)
	areaReadRepo := repositories.NewAreaReadRepository(database)
	categoryReadRepo := repositories.NewCategoryReadRepository(database)
	itemReadRepo := repositories.NewItemReadRepository(database)
	itemWriteRepo := repositories.NewItemWriteRepository(database)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	catalogService := services.NewCatalogService(areaReadRepo, categoryReadRepo)
	inventoryService := services.NewInventoryService(itemReadRepo, itemWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listAreasHandler := handlers.NewListAreasHandler(catalogService)
	listAreaCategoriesHandler := handlers.NewListAreaCategoriesHandler(catalogService)
	listAreaItemsHandler := handlers.NewListAreaItemsHandler(inventoryService)
	listCategoriesHandler := handlers.NewListCategoriesHandler(catalogService)
	getCategoryHandler := handlers.NewGetCategoryHandler(catalogService)
	listItemsHandler := handlers.NewListItemsHandler(inventoryService)
	getItemHandler := handlers.NewGetItemHandler(inventoryService)
	createItemHandler := handlers.NewCreateItemHandler(inventoryService)
	updateItemHandler := handlers.NewUpdateItemHandler(inventoryService)
	deleteItemHandler := handlers.NewDeleteItemHandler(inventoryService)

	authMiddleware := middlewares.AuthMiddleware(tokener, authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	// Wide-open CORS, suitable for a trusted/dev deployment only
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/", registerHandler)
		r.Post("/token", loginHandler)
	})

	r.Route("/areas", func(r chi.Router) {
		r.Get("/", listAreasHandler)
		r.Get("/{id}/categories", listAreaCategoriesHandler)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/{id}/items", listAreaItemsHandler)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", listCategoriesHandler)
		r.Get("/{id}", getCategoryHandler)
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", listItemsHandler)
		r.Post("/", createItemHandler)
		r.Get("/{id}", getItemHandler)
		r.Put("/{id}", updateItemHandler)
		r.Delete("/{id}", deleteItemHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
