package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ikuuu-checkin/internal/config"
	"ikuuu-checkin/internal/orchestrator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.LoadRuntime()
	if errors.Is(err, config.ErrMissingCredentials) {
		log.Printf("ENV ERROR: %v", err)
		return 1
	}
	if err != nil {
		log.Fatalf("load runtime: %v", err)
	}

	rep := orchestrator.New(cfg).Run(ctx)
	if !rep.OK() {
		log.Println("checkin finished with errors")
	} else {
		log.Println("checkin finished")
	}
	return 0
}
