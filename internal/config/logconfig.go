package config

import (
	"github.com/op/go-logging"

	mylog "github.com/kestrelchess/kestrel/internal/log"
)

// logConfiguration holds the destinations and verbosity of the engine's
// loggers. Read from the [Log] table of the toml config file.
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	LogPath      string
}

// LogLevels maps the lower case level names accepted on the command line
// and in the config file to the go-logging level constants.
var LogLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.LogPath = "./logs"
}

// setupLogLvl resolves the configured level names to go-logging levels and
// pushes them into the log package's package level variables, which the
// next GetLog/GetSearchLog call will pick up.
func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
		LogLevel = int(lvl)
		mylog.StandardLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.SearchLogLvl]; found {
		SearchLogLevel = int(lvl)
		mylog.SearchLevel = lvl
	}
}
