package spectators

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = NamedLogger("spectators")

// NamedLogger creates a logger which prefixes every message with name.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &namedFormatter{
			TextFormatter: logrus.TextFormatter{FullTimestamp: true},
			name:          name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) { log = l }

// Logger returns the package logger.
func Logger() *logrus.Logger { return log }

type namedFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry.
func (f *namedFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%s] %s", f.name, entry.Message)
	return f.TextFormatter.Format(entry)
}
