package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type logrusLogger struct {
	logger *logrus.Logger
}

var (
	loggerInstance *logrusLogger
	once           sync.Once
)

// New creates a new singleton instance of the logrus-backed logger.
// The level is taken from LOG_LEVEL (defaults to info).
func New() Logger {
	once.Do(func() {
		l := logrus.New()
		l.SetOutput(os.Stdout)
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		l.SetLevel(level)

		loggerInstance = &logrusLogger{logger: l}
	})
	return loggerInstance
}

// Error logs an error message together with its cause.
func (l *logrusLogger) Error(msg string, err error) {
	if err != nil {
		l.logger.WithError(err).Error(msg)
		return
	}
	l.logger.Error(msg)
}

// Warn logs a warning message.
func (l *logrusLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Info logs an informational message.
func (l *logrusLogger) Info(msg string) {
	l.logger.Info(msg)
}

// Debug logs a debug message.
func (l *logrusLogger) Debug(msg string) {
	l.logger.Debug(msg)
}
