package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/workwealth/workwealth/internal/commands"
)

func main() {
	// Optional .env for WORKWEALTH_DATA_DIR and friends.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
