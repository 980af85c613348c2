package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger - отладочный логгер. Без debug ничего не пишет,
// чтобы успешная проверка проходила молча.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("component", "configguard").
		Logger()
}
