package server

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Port      string
	AssetRoot string

	DeepgramAPIKey string
	GroqAPIKey     string
	GroqModel      string
}

const defaultGroqModel = "llama-3.3-70b-versatile"

// LoadConfig reads configuration from a .env file (if present) and the
// environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		AssetRoot:      os.Getenv("ASSET_ROOT"),
		DeepgramAPIKey: os.Getenv("DEEPGRAM_API_KEY"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		GroqModel:      getEnv("GROQ_MODEL", defaultGroqModel),
	}
}

// Validate reports the first missing required setting. The server refuses
// to start without vendor credentials; there is no degraded mode.
func (c Config) Validate() error {
	if c.DeepgramAPIKey == "" {
		return fmt.Errorf("DEEPGRAM_API_KEY is not set")
	}
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is not set")
	}
	return nil
}

// Address is the listen address derived from the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
