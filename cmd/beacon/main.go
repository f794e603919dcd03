package main

import (
	"context"
	"net/http"
	"os"

	"technobeacon/internal/logging"
	"technobeacon/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrap(context.Background(), cfg, dataStore, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap")
	}

	handler := newHTTPHandler(cfg, dataStore, log)

	log.Info().Str("addr", cfg.Addr).Msg("API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
