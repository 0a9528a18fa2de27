package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
	"github.com/fleshka4/v4-swap-quoter/internal/logger"
	"github.com/fleshka4/v4-swap-quoter/internal/service"
	transport "github.com/fleshka4/v4-swap-quoter/internal/transport/http"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	l, err := logger.New(cfg.LogLevel, false)
	if err != nil {
		log.Fatalf("logger.New: %v", err)
	}
	defer func() { _ = l.Sync() }()

	client, err := uniswapv4.NewClient(cfg.RPCURL, cfg.RequestTimeout)
	if err != nil {
		l.Fatal("uniswapv4.NewClient", zap.Error(err))
	}

	srv := transport.NewServer(service.NewQuoterService(client, cfg, l), cfg, l)

	err = srv.ListenAndServe(cfg.ListenAddr)
	if err != nil {
		l.Fatal("srv.ListenAndServe", zap.Error(err))
	}
}
