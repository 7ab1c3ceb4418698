package server

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("DEEPGRAM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.GroqModel == "" {
		t.Fatal("expected a default groq model")
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("unexpected address: %q", cfg.Address())
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{GroqAPIKey: "g"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a missing deepgram key to fail validation")
	}

	cfg.DeepgramAPIKey = "d"
	cfg.GroqAPIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a missing groq key to fail validation")
	}

	cfg.GroqAPIKey = "g"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected a complete config to validate, got %v", err)
	}
}
