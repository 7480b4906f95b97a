package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-diet-planner/docs"
	"github.com/sbilibin2017/gw-diet-planner/internal/facades"
	"github.com/sbilibin2017/gw-diet-planner/internal/handlers"
	"github.com/sbilibin2017/gw-diet-planner/internal/jwt"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/migrations"
	"github.com/sbilibin2017/gw-diet-planner/internal/repositories"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/sbilibin2017/gw-diet-planner/internal/validators"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	// Application
	AppHost     string
	AppPort     string
	AppEnv      string
	LogLevel    string
	CORSOrigins []string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	// Kafka, publishing is disabled without brokers
	KafkaBrokers    []string
	KafkaUsageTopic string

	// JWT
	JWTSecretKey string
	JWTExpSecond int

	// LLM provider
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	LLMTimeoutSecond int
	LLMMaxRetries    int

	// Hosted auth provider, sync trusts the request body when empty
	AuthProviderURL string

	// Quotas
	UsageDailyTokenLimit int
	AIRatePerMinute      float64
	AIRateBurst          int
}

func (c config) production() bool {
	return c.AppEnv == "production"
}

// @title diet-planner API
// @version 1.0.0
// @description Meal plan generation, saved plans, weekly schedules and device/provider identity reconciliation
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseConfig loads environment variables from a file and returns
// the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "http://localhost:5173"))

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "90000"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaUsageTopic = getEnv("KAFKA_USAGE_TOPIC", "token-usage")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}

	// LLM config
	cfg.LLMBaseURL = getEnv("LLM_BASE_URL", "https://api.openai.com")
	cfg.LLMAPIKey = getEnv("LLM_API_KEY", "")
	cfg.LLMModel = getEnv("LLM_MODEL", "gpt-4o-mini")
	if cfg.LLMTimeoutSecond, err = getInt("LLM_TIMEOUT_SECOND", "60"); err != nil {
		return
	}
	if cfg.LLMMaxRetries, err = getInt("LLM_MAX_RETRIES", "2"); err != nil {
		return
	}
	if cfg.LLMMaxRetries < 0 {
		err = fmt.Errorf("LLM_MAX_RETRIES: must not be negative")
		return
	}

	// Auth provider config
	cfg.AuthProviderURL = getEnv("AUTH_PROVIDER_URL", "")

	// Quota config
	if cfg.UsageDailyTokenLimit, err = getInt("USAGE_DAILY_TOKEN_LIMIT", "100000"); err != nil {
		return
	}
	if cfg.AIRatePerMinute, err = strconv.ParseFloat(getEnv("AI_RATE_PER_MINUTE", "10"), 64); err != nil {
		err = fmt.Errorf("AI_RATE_PER_MINUTE: %w", err)
		return
	}
	if cfg.AIRateBurst, err = getInt("AI_RATE_BURST", "3"); err != nil {
		return
	}

	if cfg.production() && cfg.AuthProviderURL == "" {
		err = errors.New("AUTH_PROVIDER_URL is required in production")
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, !cfg.production()); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for usage events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaUsageTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaUsageTopic)
	}

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize facades
	llm := facades.NewLLMFacade(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSecond)*time.Second,
		facades.WithLLMMaxRetries(uint64(cfg.LLMMaxRetries)),
	)
	identityProvider := facades.NewIdentityProviderFacade(cfg.AuthProviderURL, 10*time.Second)
	if !identityProvider.Enabled() {
		logger.Log.Warn("AUTH_PROVIDER_URL is not set, identity sync trusts the request body")
	}

	validator, err := validators.NewMealPlanValidator()
	if err != nil {
		return err
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	planReadRepo := repositories.NewPlanReadRepository(db, txGetter)
	planWriteRepo := repositories.NewPlanWriteRepository(db, txGetter)
	scheduleReadRepo := repositories.NewScheduleReadRepository(db, txGetter)
	scheduleWriteRepo := repositories.NewScheduleWriteRepository(db, txGetter)
	tokenUsageRepo := repositories.NewTokenUsageRepository(db)
	usageCacheRepo := repositories.NewUsageCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	identityService := services.NewIdentityService(userReadRepo, userWriteRepo, identityProvider, jwtService)
	planService := services.NewPlanService(planReadRepo, planWriteRepo)
	scheduleService := services.NewScheduleService(scheduleReadRepo, scheduleWriteRepo, planReadRepo)
	usageService := services.NewUsageService(tokenUsageRepo, usageCacheRepo, kafkaWriter, cfg.UsageDailyTokenLimit)
	defer usageService.Wait()
	plannerService := services.NewPlannerService(llm, validator, usageService)

	cookie := handlers.NewSessionCookie(cfg.production(), jwtService.Expiration())

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler(db))
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Identity routes, each request in one transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		handlers.RegisterUsersHandler(r, handlers.NewUsersHandler(identityService, cookie))
		handlers.RegisterAuthHandler(r, handlers.NewAuthHandler(authService, jwtService, cookie))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			handlers.RegisterGetPlansHandler(r, handlers.NewGetPlansHandler(planService))
			handlers.RegisterCreatePlanHandler(r, handlers.NewCreatePlanHandler(planService))
			handlers.RegisterUpdatePlanHandler(r, handlers.NewUpdatePlanHandler(planService))
			handlers.RegisterDeletePlanHandler(r, handlers.NewDeletePlanHandler(planService))
			handlers.RegisterScheduleHandlers(r,
				handlers.NewListSchedulesHandler(scheduleService),
				handlers.NewCreateScheduleHandler(scheduleService),
				handlers.NewGetScheduleHandler(scheduleService),
				handlers.NewUpdateScheduleHandler(scheduleService),
				handlers.NewDeleteScheduleHandler(scheduleService),
			)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(middlewares.NewRateLimiter(cfg.AIRatePerMinute, cfg.AIRateBurst)))
			handlers.RegisterAIHandler(r, handlers.NewAIHandler(plannerService))
		})

		handlers.RegisterUsageHandlers(r,
			handlers.NewUsageSummaryHandler(usageService),
			handlers.NewUsageCheckHandler(usageService),
		)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
