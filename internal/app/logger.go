package app

import (
	"os"
	"time"

	"slot_backend/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogger настраивает глобальный zerolog логгер
func setupLogger(cfg config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(cfg.Level()); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.Pretty() {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
