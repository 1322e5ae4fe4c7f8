// Package logger builds zerolog loggers from config.LogConfig.
package logger

import (
	"github.com/aleister1102/legacyurl/internal/config"
	"github.com/rs/zerolog"
)

// New creates a logger writing to stderr and, when configured, a rotated file.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
