package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/roseu7/wordle-helper/internal/dict"
	"github.com/roseu7/wordle-helper/internal/httpserver"
	"github.com/roseu7/wordle-helper/internal/session"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	provider, source := selectProvider()
	entries, err := provider.Entries(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("failed to load dictionary")
	}
	log.Info().Str("source", source).Int("entries", len(entries)).Msg("dictionary loaded")

	srv := httpserver.New(session.NewMemoryStore(), entries)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-helper")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// selectProvider picks the dictionary source: WORDS_DB (SQLite) wins over
// WORDS_FILE, and the embedded default list is the last resort.
func selectProvider() (dict.Provider, string) {
	if dsn := os.Getenv("WORDS_DB"); dsn != "" {
		p, err := dict.OpenSQLite(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("db", dsn).Msg("failed to open words database")
		}
		return p, "sqlite:" + dsn
	}
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return dict.FileProvider{Path: path}, "file:" + path
	}
	return dict.EmbeddedProvider{}, "embedded"
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
