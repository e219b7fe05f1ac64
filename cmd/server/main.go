package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/kiosk-checkout/internal/adapter/handler"
	"github.com/rl1809/kiosk-checkout/internal/adapter/payment"
	"github.com/rl1809/kiosk-checkout/internal/adapter/storage"
	"github.com/rl1809/kiosk-checkout/internal/core/service"
	"github.com/rl1809/kiosk-checkout/internal/logging"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultMySQLDSN  = "root:root@tcp(localhost:3306)/kiosk?parseTime=true"
	defaultRedisAddr = "localhost:6379"
)

func main() {
	logging.Init(slog.LevelInfo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", envOr("MYSQL_DSN", defaultMySQLDSN))
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	slog.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", defaultRedisAddr),
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	slog.Info("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	if err := mysqlAdapter.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	catalog := storage.NewCachedCatalog(rdb, mysqlAdapter)
	authorizer := payment.NewStubAuthorizer()

	// Initialize services
	orderService := service.NewOrderService(catalog, authorizer, mysqlAdapter)
	menuService := service.NewMenuService(mysqlAdapter)
	adminService := service.NewAdminService(mysqlAdapter)

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(orderService, menuService, adminService, mysqlAdapter)
	httpServer := &http.Server{
		Addr:    envOr("HTTP_ADDR", defaultHTTPAddr),
		Handler: handler.NewRouter(httpHandler),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	slog.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	slog.Info("connections closed")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
