package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger returns logger writing to given output either as JSON lines or as human-readable console output
func newLogger(cfg LogConfig, output io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if strings.ToLower(cfg.Format) == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
