package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/app"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/config"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
