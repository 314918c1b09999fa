// Package logger holds the application-wide logrus instance.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance shared by the whole application.
// It works out of the box with logrus defaults; Init applies the
// environment-driven configuration on top.
var Log = logrus.New()

// Init configures the global logger. Call it once at startup.
//
// LOG_LEVEL selects the level (default "info"). LOG_FORMAT selects the
// formatter: "json" for machine-readable output, anything else gets a
// colored text formatter for development.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}
