package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/mulozi/api/internal/adapters/handler/http"
	"github.com/mulozi/api/internal/adapters/password"
	repo "github.com/mulozi/api/internal/adapters/repository/postgres"
	"github.com/mulozi/api/internal/config"
	"github.com/mulozi/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := repo.NewUserRepository(db)
	refreshRepo := repo.NewRefreshTokenRepository(db)

	hasher := password.NewArgon2Hasher()
	tokenSvc := services.NewTokenService(
		[]byte(cfg.AccessTokenSecret),
		[]byte(cfg.RefreshTokenSecret),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	authSvc := services.NewAuthService(userRepo, refreshRepo, tokenSvc, hasher, cfg.RefreshTokenTTL, logger)
	userSvc := services.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc, logger)
	userHandler := handler.NewUserHandler(userSvc)
	router := handler.NewHandler(authHandler, userHandler, tokenSvc, userRepo, cfg.ProtectedRoutes)

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
