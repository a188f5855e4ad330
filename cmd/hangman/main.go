// Package main is the entry point for Hangman.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/save"
	"github.com/samdwyer/hangman/internal/stats"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/wordlist"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	plain := flag.Bool("plain", false, "use the line-based prompt instead of the full-screen UI")
	seed := flag.Int64("seed", 0, "random seed for answer selection (0 picks one)")
	flag.Parse()

	// Not fatal - env vars might be set directly
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		os.Exit(1)
	}
	if *plain {
		cfg.Plain = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	closeLog := setupLogging(cfg)
	defer closeLog()
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, continuing without traces")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("shutting down telemetry")
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("game error")
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// run wires the stores and starts the configured front end.
func run(ctx context.Context, cfg config.Config) error {
	words, err := wordlist.Source(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}

	var recorder game.Recorder
	if cfg.StatsDB != "" {
		st, err := stats.Open(ctx, cfg.StatsDB)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.StatsDB).Msg("statistics disabled")
		} else {
			defer st.Close()
			recorder = st
		}
	}

	// Fail before taking over the terminal when no answer can ever be chosen.
	if len(hangman.Candidates(words, cfg.Rules())) == 0 {
		return hangman.ErrEmptyWordList
	}

	session := game.NewSession(cfg, words, save.NewStore(cfg.SaveDir), recorder)

	if cfg.Plain {
		return game.NewConsole(session, os.Stdin, os.Stdout).Run(ctx)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	return game.New(screen, session).Run(ctx)
}

// setupLogging points the global zerolog logger at the configured file.
// The full-screen UI owns the terminal, so logs never go to stderr.
func setupLogging(cfg config.Config) func() {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: logging disabled: %v\n", err)
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }
}

// setupOTelEnv maps the Honeycomb settings onto the standard OTEL variables
// unless they are already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_HANGMAN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HANGMAN_DATASET")
	if dataset == "" {
		dataset = "hangman"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
