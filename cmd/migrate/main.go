package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"gigboard/internal/config"
	"gigboard/internal/database/migration"
	dbpostgres "gigboard/internal/database/postgres"
	"gigboard/internal/database/seeder"
	"gigboard/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "insert default categories and skills after migrating")
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded set")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	r := migration.Runner{FS: migrations.FS, Logger: logger}
	if *dir != "" {
		r = migration.Runner{Dir: *dir, Logger: logger}
	}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	logger.Printf("Migrations up to date")

	if !*seed {
		return
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Printf("Seed complete")
}
