// Package log is a thin logrus front that only emits when logging is enabled in the configuration.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/nowplaying-cli/nowplaying/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	enabled bool
	logger  = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup opens today's log file and applies the configured formatter and level.
// When logs.write is false every emission below is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return nil
}

// Level reports the active level.
func Level() logrus.Level {
	return logger.GetLevel()
}

// Op logs a debug diagnostic tagged with the failing operation's name.
// Adapters use it for transient absences that are recovered locally.
func Op(op, format string, args ...any) {
	if enabled {
		logger.WithField("op", op).Debugf(format, args...)
	}
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) { emit(logrus.ErrorLevel, format, args) }
func Warnf(format string, args ...any)  { emit(logrus.WarnLevel, format, args) }
func Infof(format string, args ...any)  { emit(logrus.InfoLevel, format, args) }
func Debugf(format string, args ...any) { emit(logrus.DebugLevel, format, args) }
func Tracef(format string, args ...any) { emit(logrus.TraceLevel, format, args) }

func emit(level logrus.Level, format string, args []any) {
	if enabled {
		logger.Logf(level, format, args...)
	}
}
