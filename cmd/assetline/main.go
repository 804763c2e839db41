package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/assetline-dev/assetline/internal/commands"
	"github.com/assetline-dev/assetline/internal/logger"
)

func main() {
	// .env is optional; it seeds LOG_LEVEL and friends for local use.
	_ = godotenv.Load()
	logger.Init()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
