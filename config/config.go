package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env when present and returns the listen address. A missing
// .env is not fatal — in deployed environments the platform sets the
// variables directly.
func Load() string {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
