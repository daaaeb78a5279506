package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the server logger: JSON lines on stdout.
func SetupLogging(level logrus.Level) *logrus.Logger {
	return NewLogger(os.Stdout, level)
}

// NewLogger builds a JSON logger writing to out. The level key is renamed so
// it does not clash with the "level" field some handlers attach.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out: out,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks:    make(logrus.LevelHooks),
		Level:    level,
		ExitFunc: os.Exit,
	}
}
