package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the default logger for the application.
	Log = logrus.New()
)

// Init initializes the logger with the given log level. An empty level
// means "info". Output goes to stderr so results on stdout stay pipeable.
func Init(level string) error {
	return InitWithOutput(level, os.Stderr)
}

// InitWithOutput is Init with an explicit destination.
func InitWithOutput(level string, out io.Writer) error {
	if level == "" {
		level = "info"
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Log.SetLevel(logLevel)
	Log.SetOutput(out)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}

// ForCommand returns an entry tagged with the running command's name.
func ForCommand(name string) *logrus.Entry {
	return Log.WithField("cmd", name)
}
