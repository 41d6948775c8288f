package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

var (
	log  = zerolog.Nop()
	once sync.Once
)

// Init configures the global logger. Diagnostics always go to a rotating
// file next to the user config; console output is only enabled with the
// --verbose flag so the departure board itself stays clean.
func Init(verbose bool, level zerolog.Level) {
	once.Do(func() {
		var writers []io.Writer

		if verbose {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		}

		if homeDir, err := os.UserHomeDir(); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(homeDir, ".kvvtracker.log"),
				MaxSize:    5, // megabytes
				MaxBackups: 2,
				MaxAge:     14, // days
			})
		}

		if len(writers) == 0 {
			log = zerolog.Nop()
			return
		}

		log = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger().Level(level)
	})
}

// Debug logs a debug message
func Debug(msg string, fields ...interface{}) {
	logWithFields(log.Debug(), msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...interface{}) {
	logWithFields(log.Info(), msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...interface{}) {
	logWithFields(log.Error(), msg, fields...)
}

// logWithFields treats the variadic tail as key-value pairs
func logWithFields(event *zerolog.Event, msg string, fields ...interface{}) {
	if len(fields)%2 == 0 {
		for i := 0; i < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			event = event.Interface(key, fields[i+1])
		}
	}
	event.Msg(msg)
}
