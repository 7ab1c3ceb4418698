package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pipeline "github.com/counterline/voice-core/core"
	"github.com/counterline/voice-core/core/agents"
	"github.com/counterline/voice-core/core/speechtotext"
	sttdeepgram "github.com/counterline/voice-core/core/speechtotext/deepgram"
	ttsdeepgram "github.com/counterline/voice-core/core/texttospeech/deepgram"
	"github.com/counterline/voice-core/server"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg := server.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// One supervisor serves every session; order state and conversation
	// memory are keyed by session ID inside it.
	supervisor := agents.NewSupervisor(cfg.GroqAPIKey, cfg.GroqModel)

	newSession := func(ctx context.Context) (*pipeline.Session, error) {
		recognizer, err := sttdeepgram.NewTranscriptionClient(ctx,
			sttdeepgram.WithAPIKey(cfg.DeepgramAPIKey),
			sttdeepgram.WithTranscriptionOptions(speechtotext.WithInterimResults()))
		if err != nil {
			return nil, fmt.Errorf("failed to connect recognizer: %w", err)
		}

		synthesizer, err := ttsdeepgram.NewTextToSpeechClient(ctx, ttsdeepgram.VoiceThalia,
			ttsdeepgram.WithAPIKey(cfg.DeepgramAPIKey))
		if err != nil {
			recognizer.Close()
			return nil, fmt.Errorf("failed to connect synthesizer: %w", err)
		}

		return pipeline.NewSession(recognizer, supervisor, synthesizer), nil
	}

	srv := server.New(cfg, newSession)

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", cfg.Address())
		serverErrors <- srv.Start(cfg.Address())
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("shutdown signal received: %v", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
