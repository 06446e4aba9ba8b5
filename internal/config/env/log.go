package env

import (
	"fmt"
	"os"
	"strings"

	"slot_backend/internal/config"

	"github.com/rs/zerolog"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logPrettyEnvName = "LOG_PRETTY"

	defaultLogLevel = "info"
)

type logConfig struct {
	level  string
	pretty bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := strings.ToLower(os.Getenv(logLevelEnvName))
	if len(level) == 0 {
		level = defaultLogLevel
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	pretty := false
	switch strings.ToLower(os.Getenv(logPrettyEnvName)) {
	case "1", "true", "yes":
		pretty = true
	}

	return &logConfig{
		level:  level,
		pretty: pretty,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Pretty() bool {
	return cfg.pretty
}
