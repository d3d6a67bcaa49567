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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/evgsol/matchpay/internal/facades"
	"github.com/evgsol/matchpay/internal/handlers"
	"github.com/evgsol/matchpay/internal/jwt"
	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/middlewares"
	"github.com/evgsol/matchpay/internal/repositories"
	"github.com/evgsol/matchpay/internal/services"

	_ "github.com/evgsol/matchpay/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title matchpay API
// @version 1.0.0
// @description Order matching and escrow settlement service for peer-to-peer deliveries
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		matchRanking, confirmTTL, sweepInterval, syncPoll,
		feeFlat, feePercent,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		matchRanking, confirmTTL, sweepInterval, syncPoll,
		feeFlat, feePercent,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, JWT, matching, sweeper
// and escrow configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	matchRanking string, confirmTTLSecond, sweepIntervalSecond, syncPollMs int,
	escrowFeeFlat int64, escrowFeePercent float64,
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
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (secondary real-time store)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. An empty broker disables notification publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "matchpay-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "60")); err != nil {
		return
	}

	// Matching config
	matchRanking = getEnv("MATCH_RANKING", repositories.RankOldestFirst)
	if confirmTTLSecond, err = strconv.Atoi(getEnv("MATCH_CONFIRM_TTL_SECOND", "1800")); err != nil {
		return
	}
	if sweepIntervalSecond, err = strconv.Atoi(getEnv("MATCH_SWEEP_INTERVAL_SECOND", "60")); err != nil {
		return
	}
	if syncPollMs, err = strconv.Atoi(getEnv("SYNC_POLL_MS", "500")); err != nil {
		return
	}

	// Escrow fee config
	if escrowFeeFlat, err = strconv.ParseInt(getEnv("ESCROW_FEE_FLAT", "0"), 10, 64); err != nil {
		return
	}
	if escrowFeePercent, err = strconv.ParseFloat(getEnv("ESCROW_FEE_PERCENT", "1.5"), 64); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, services and HTTP
// server, starts the background synchronizer and sweeper, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	matchRanking string, confirmTTLSecond, sweepIntervalSecond, syncPollMs int,
	escrowFeeFlat int64, escrowFeePercent float64,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka notifier, optional
	var notifier services.Notifier
	if kafkaBroker != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		notifierFacade := facades.NewNotifierFacade(writer)
		defer notifierFacade.Close()
		notifier = notifierFacade
		logger.Log.Infof("Kafka notifier enabled: %s topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	walletRepo := repositories.NewWalletRepository(db, txGetter)
	txnRepo := repositories.NewTransactionRepository(db, txGetter)
	orderRepo := repositories.NewOrderRepository(db, txGetter)
	matchRepo := repositories.NewMatchRepository(db, txGetter)
	channelRepo := repositories.NewChannelRepository(db, txGetter)
	outboxRepo := repositories.NewOutboxRepository(db, txGetter)
	txRunner := repositories.NewTxRunner(db, middlewares.WithTx)

	// Initialize facades
	mirrorFacade := facades.NewMirrorFacade(rdb)

	// Initialize services
	eventRecorder := services.NewEventRecorder(outboxRepo)
	walletService := services.NewWalletService(walletRepo, txnRepo, notifier)
	escrowService := services.NewEscrowService(walletService, txnRepo, orderRepo, escrowFeeFlat, escrowFeePercent)
	channelService := services.NewChannelService(channelRepo)
	matchingService := services.NewMatchingService(orderRepo, matchRepo, eventRecorder, matchRanking)
	confirmationService := services.NewConfirmationService(matchRepo, orderRepo, channelService, matchingService, eventRecorder)
	syncService := services.NewSyncService(outboxRepo, mirrorFacade, orderRepo, notifier, time.Duration(syncPollMs)*time.Millisecond)
	sweeperService := services.NewSweeperService(matchRepo, confirmationService, txRunner,
		time.Duration(sweepIntervalSecond)*time.Second, time.Duration(confirmTTLSecond)*time.Second)

	// Initialize handlers
	proposeHandler := handlers.NewProposeHandler(matchingService, jwtSvc)
	confirmHandler := handlers.NewConfirmHandler(confirmationService, jwtSvc)
	rejectHandler := handlers.NewRejectHandler(confirmationService, jwtSvc)
	statusHandler := handlers.NewMatchingStatusHandler(orderRepo, jwtSvc)
	holdHandler := handlers.NewHoldHandler(escrowService, orderRepo, jwtSvc)
	settleHandler := handlers.NewSettleHandler(escrowService, orderRepo, jwtSvc)
	depositHandler := handlers.NewDepositHandler(walletService, jwtSvc)
	balanceHandler := handlers.NewBalanceHandler(walletService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/matching/propose", proposeHandler)
		r.Post("/matching/confirm", confirmHandler)
		r.Post("/matching/reject", rejectHandler)
		r.Get("/orders/{orderID}/matching", statusHandler)

		r.Post("/escrow/hold", holdHandler)
		r.Post("/escrow/settle", settleHandler)

		r.Post("/wallet/deposit", depositHandler)
		r.Get("/balance", balanceHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Background loops
	bgCtx, bgCancel := context.WithCancel(ctx)
	defer bgCancel()
	go syncService.Run(bgCtx)
	go sweeperService.Run(bgCtx)

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

	bgCancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
