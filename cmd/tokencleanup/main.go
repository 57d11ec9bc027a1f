// Command tokencleanup purges expired refresh-token rows. Meant to run
// periodically (cron); revoked and expired jtis serve no purpose once the
// signed tokens they belong to can no longer validate.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/mulozi/api/internal/adapters/repository/postgres"
	"github.com/mulozi/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dbHost, dbPort, dbUser, dbPass, dbName string

	flag.StringVar(&dbHost, "db-host", os.Getenv("POSTGRES_HOST"), "Database host")
	flag.StringVar(&dbPort, "db-port", os.Getenv("POSTGRES_PORT"), "Database port")
	flag.StringVar(&dbUser, "db-user", os.Getenv("POSTGRES_USER"), "Database user")
	flag.StringVar(&dbPass, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	flag.StringVar(&dbName, "db-name", os.Getenv("POSTGRES_DB"), "Database name")
	flag.Parse()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	refreshRepo := postgres.NewRefreshTokenRepository(db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cleanupService := services.NewCleanupService(refreshRepo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting refresh token cleanup job...")

	if err := cleanupService.PurgeExpiredTokens(ctx); err != nil {
		log.Fatalf("Error purging refresh tokens: %v", err)
	}

	log.Println("Refresh token cleanup completed successfully.")
}
