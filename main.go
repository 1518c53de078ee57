package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/config"
	"github.com/mjain-dev/stay_booking_system/backend/middleware"
	"github.com/mjain-dev/stay_booking_system/backend/routes"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	st := setupStore(logger)

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = config.NewRedisClient(addr, os.Getenv("REDIS_PASS"))
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		logger.Info("search cache enabled", zap.String("addr", addr))
	}

	bookingDelay := 1000 * time.Millisecond
	if v := os.Getenv("BOOKING_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			bookingDelay = time.Duration(ms) * time.Millisecond
		}
	}

	router := mux.NewRouter()
	routes.Routes(router, st, redisClient, bookingDelay, logger)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(middleware.RequestLogger(logger)(router))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("server running", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("error starting server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("error during server shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}

// setupStore picks the catalog backend: MongoDB when MONGOURI is set,
// otherwise the in-memory fixture store.
func setupStore(logger *zap.Logger) store.Store {
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		logger.Info("using in-memory store with fixture catalog")
		return store.NewMemoryStore()
	}

	client, err := config.ConnectDB(uri)
	if err != nil {
		logger.Fatal("failed to connect to the database", zap.Error(err))
	}

	dbName := os.Getenv("DB")
	if dbName == "" {
		dbName = "stay_booking"
	}

	ms := store.NewMongoStore(client.Database(dbName))
	if err := ms.EnsureSeeded(context.Background()); err != nil {
		logger.Fatal("failed to seed listing catalog", zap.Error(err))
	}

	logger.Info("using mongodb store", zap.String("db", dbName))
	return ms
}
