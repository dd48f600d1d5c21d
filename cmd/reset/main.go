// Command reset wipes the configured economy store and recreates it empty.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CashPoolRPG_Go/internal/bootstrap"
	"github.com/osse101/CashPoolRPG_Go/internal/config"
	"github.com/osse101/CashPoolRPG_Go/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if err := resetPostgres(ctx, cfg); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
	case config.StoreDriverSQLite:
		removeFile(cfg.SQLitePath)
		removeFile(cfg.SQLitePath + "-wal")
		removeFile(cfg.SQLitePath + "-shm")
	case config.StoreDriverFile:
		removeFile(cfg.SnapshotPath)
	case config.StoreDriverMemory:
		log.Println("Memory store has nothing to reset.")
		return
	}

	// Reopening applies migrations so the store is ready to serve.
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to recreate store: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("Warning: close failed: %v", err)
	}
	log.Printf("✅ %s economy store reset complete.", cfg.StoreDriver)
}

// resetPostgres drops and recreates the economy database through the
// maintenance database on the same server.
func resetPostgres(ctx context.Context, cfg *config.Config) error {
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	serverPool, err := database.NewPool(ctx, serverConnString, 2, 30*time.Minute, time.Hour)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL server: %w", err)
	}
	defer serverPool.Close()

	dbName := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...", cfg.DBName)
	if _, err := serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		log.Printf("Warning: failed to terminate connections: %v", err)
	}

	log.Printf("Dropping database %s if it exists...", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+dbName); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	log.Printf("Database %s recreated.", cfg.DBName)
	return nil
}

func removeFile(path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		log.Printf("Removed %s", path)
	case !errors.Is(err, os.ErrNotExist):
		log.Fatalf("Failed to remove %s: %v", path, err)
	}
}
