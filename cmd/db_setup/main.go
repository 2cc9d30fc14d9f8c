package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/Newcoder006/fitn/internal/config"
	"github.com/Newcoder006/fitn/internal/db"
	"github.com/Newcoder006/fitn/internal/exercises"

	log "github.com/sirupsen/logrus"
)

// Applies the service schema and seeds the exercise catalog. Safe to
// re-run, the DDL is idempotent and the seed skips a non-empty catalog.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if _, err := dbPool.Exec(ctx, db.Schema); err != nil {
		log.Fatalf("apply schema: %s", err)
	}
	fmt.Println("schema applied")

	if err := exercises.NewRepo(dbPool).SeedIfEmpty(ctx); err != nil {
		log.Fatalf("seed exercise catalog: %s", err)
	}
	fmt.Println("exercise catalog ready")
}
