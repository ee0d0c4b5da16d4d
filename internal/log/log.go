// Package log wraps github.com/op/go-logging to cut the boilerplate needed
// in each package down to a single GetLog/GetSearchLog/GetUciLog call.
package log

import (
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciLogFilePath string

	// StandardLevel and SearchLevel are set by the config package and are
	// applied by the next GetLog/GetSearchLog call. TestLevel is used by
	// GetTestLog; GetUciLog always logs at debug level.
	StandardLevel = logging.INFO
	SearchLevel   = logging.INFO
	TestLevel     = logging.DEBUG
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath = exePath + "/../logs/" + exeName + "_ucilog.log"

	standardLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard engine logger, backed by stdout.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(StandardLevel, "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the logger used inside the search goroutine. Kept
// separate from the standard logger so search verbosity can be tuned
// without drowning the rest of the engine's log output.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(SearchLevel, "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns a logger used by tests, defaulting to debug level.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(TestLevel, "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetUciLog returns the logger used to record raw UCI protocol traffic, to
// both stdout and a log file alongside the executable.
func GetUciLog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	backend1Leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend1, uciFormat))
	backend1Leveled.SetLevel(logging.DEBUG, "")

	var err error
	uciLogFile, err = os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		stdlog.Println("uci log file could not be opened:", err)
		uciLog.SetBackend(backend1Leveled)
		return uciLog
	}

	backend2 := logging.NewLogBackend(uciLogFile, "", stdlog.Lmsgprefix)
	backend2Leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend2, uciFormat))
	backend2Leveled.SetLevel(logging.DEBUG, "")

	uciLog.SetBackend(logging.SetBackend(backend1Leveled, backend2Leveled))
	return uciLog
}
