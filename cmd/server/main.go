package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/ballotbox/api/internal/adapters/handler/http"
	"github.com/ballotbox/api/internal/adapters/repository/postgres"
	"github.com/ballotbox/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	// Schema setup is an explicit, idempotent step at process start,
	// separate from request handling.
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.ApplyMigrations(migrateCtx, db); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Println("Warning: JWT_SECRET not set")
	}

	candidateRepo := postgres.NewCandidateRepository(db)
	voterRepo := postgres.NewVoterRepository(db)
	ledger := postgres.NewVoteEventRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	verifier := postgres.NewCredentialVerifier(adminRepo)
	health := postgres.NewHealthRepository(db)

	handlers := handler.Handlers{
		Candidate: handler.NewCandidateHandler(services.NewCandidateService(candidateRepo)),
		Vote:      handler.NewVoteHandler(services.NewVoteService(candidateRepo, voterRepo, ledger)),
		Results:   handler.NewResultsHandler(services.NewResultsService(candidateRepo, voterRepo, ledger)),
		Voter:     handler.NewVoterHandler(services.NewVoterService(voterRepo)),
		Admin:     handler.NewAdminHandler(services.NewAdminService(adminRepo, candidateRepo, voterRepo, ledger, verifier, jwtSecret)),
		Health:    handler.NewHealthHandler(health),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: handler.NewHandler(handlers, jwtSecret)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	dbName := os.Getenv("POSTGRES_DB")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
