package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ballotbox/api/internal/adapters/repository/postgres"
	"github.com/ballotbox/api/internal/core/services"
)

// Loads the demo election fixture. This is demo/test scaffolding and is
// deliberately not reachable through the HTTP API.
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.ApplyMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	adminRepo := postgres.NewAdminRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	voterRepo := postgres.NewVoterRepository(db)
	ledger := postgres.NewVoteEventRepository(db)

	seedService := services.NewSeedService(adminRepo, candidateRepo, voterRepo, ledger)

	log.Println("Seeding demo election data...")

	if err := seedService.Seed(ctx); err != nil {
		log.Fatalf("Error seeding demo data: %v", err)
	}

	log.Println("Demo data seeded successfully.")
}
