package config

import (
	"log"

	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file if one exists next to the binary.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
