// Package logging configures the global zerolog logger. Diagnostics go to
// stderr so stdout only ever carries the resolved path.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return level, nil
}

// SetupLogger configures the global logger at the given level, writing to
// stderr and, when logFile is non-empty, appending to that file as well.
// The returned function closes the log file. If the file cannot be opened
// the stderr logger is still installed and the error is returned.
func SetupLogger(stderr io.Writer, level zerolog.Level, logFile string) (func() error, error) {
	zerolog.SetGlobalLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}

	writers := []io.Writer{consoleWriter}
	closeFn := func() error { return nil }

	var fileErr error
	if logFile != "" {
		f, err := setupLogFile(logFile)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
			closeFn = f.Close
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		return closeFn, fileErr
	}

	log.Debug().Str("level", level.String()).Str("logFile", logFile).Msg("Logger initialized")
	return closeFn, nil
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", logDir, err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logPath, err)
	}
	return file, nil
}
