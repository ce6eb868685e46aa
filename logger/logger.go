package logger

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// RelayLogger satisfies badger's Logger interface on top of the global
// zerolog logger.
type RelayLogger struct{}

func (l *RelayLogger) Errorf(format string, i ...any) {
	log.Error().Str("component", "badger").Msgf(trim(format), i...)
}

func (l *RelayLogger) Warningf(format string, i ...any) {
	log.Warn().Str("component", "badger").Msgf(trim(format), i...)
}

func (l *RelayLogger) Infof(format string, i ...any) {
	log.Info().Str("component", "badger").Msgf(trim(format), i...)
}

func (l *RelayLogger) Debugf(format string, i ...any) {
	log.Debug().Str("component", "badger").Msgf(trim(format), i...)
}

// badger terminates its messages with a newline
func trim(format string) string {
	return strings.TrimSuffix(format, "\n")
}
