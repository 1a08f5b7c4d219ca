package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gigboard/internal/app"
	"gigboard/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}

// run returns only after cleanup has finished.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("failed to bootstrap app: %w", err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			log.Printf("cleanup error: %v", cerr)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return bootstrap.Serve(addr, sigCh)
}
