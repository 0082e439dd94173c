package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pharmaguard/functions/internal/config"
	"pharmaguard/functions/internal/handler"
	httptransport "pharmaguard/functions/internal/transport/http"
	"pharmaguard/functions/internal/transport/stdio"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using system environment variables")
	}

	cfg := config.Load()
	fn := handler.Instrument(handler.RiskCalculator())

	switch cfg.HandlerMode {
	case "http":
		serveHTTP(cfg, fn)
	default:
		runStdio(fn)
	}
}

func runStdio(fn handler.Func) {
	runner := stdio.NewRunner(fn, os.Stdin, os.Stdout)
	if err := runner.Run(context.Background()); err != nil {
		log.Fatalf("invocation failed: %v", err)
	}
}

func serveHTTP(cfg *config.Config, fn handler.Func) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httptransport.NewServer(cfg, fn)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("risk-calculator listening on :%s", cfg.HTTPPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		log.Fatalf("server failed: %v", err)
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
