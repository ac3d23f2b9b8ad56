// Package config reads the academy's runtime settings from the environment,
// falling back to a local .env file during development.
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config returns the value of an environment key, loading .env before the
// first lookup. A missing key simply yields ""; each caller decides whether
// that is fatal.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, reading from system environment variables")
		}
	})
	return os.Getenv(key)
}
