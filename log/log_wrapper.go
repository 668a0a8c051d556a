package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

var (
	lock       sync.RWMutex
	stdLogger  log.Logger
	fileLogger log.Logger
	allow      = level.AllowInfo()
)

func init() {
	stdLogger = newLogger(os.Stderr)
}

// default std logger is enabled
func EnableStdLogger(enable bool) {
	lock.Lock()
	defer lock.Unlock()

	if enable && stdLogger == nil {
		stdLogger = newLogger(os.Stderr)
	}
	if !enable {
		stdLogger = nil
	}
}

// default file logger is disabled
func EnableFileLogger(enable bool, savePath string) error {
	lock.Lock()
	defer lock.Unlock()

	if !enable {
		fileLogger = nil
		return nil
	}

	w, err := openLogFile(savePath)
	if err != nil {
		fileLogger = nil
		return err
	}
	fileLogger = newLogger(w)
	return nil
}

func EnableOnlyFileLogger(enable bool, savePath string) error {
	if err := EnableFileLogger(enable, savePath); err != nil {
		return err
	}
	if enable {
		EnableStdLogger(false)
	}
	return nil
}

// SetLevel accepts debug, info, warn or error.
func SetLevel(lvl string) error {
	var option level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		option = level.AllowDebug()
	case "info", "":
		option = level.AllowInfo()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		return fmt.Errorf("unknown log level: %s", lvl)
	}

	lock.Lock()
	defer lock.Unlock()
	allow = option
	return nil
}

func SetToDebug() { SetLevel("debug") }
func SetToInfo()  { SetLevel("info") }
func SetToWarn()  { SetLevel("warn") }
func SetToError() { SetLevel("error") }

// Logger returns a go-kit logger writing to every enabled sink with the
// current level filter applied.
func Logger() log.Logger {
	return log.LoggerFunc(func(keyvals ...interface{}) error {
		for _, l := range sinks() {
			if err := l.Log(keyvals...); err != nil {
				return err
			}
		}
		return nil
	})
}

// With returns Logger with keyvals attached to every line.
func With(keyvals ...interface{}) log.Logger {
	return log.With(Logger(), keyvals...)
}

func Debug(keyvals ...interface{}) {
	level.Debug(Logger()).Log(keyvals...)
}

func Info(keyvals ...interface{}) {
	level.Info(Logger()).Log(keyvals...)
}

func Warn(keyvals ...interface{}) {
	level.Warn(Logger()).Log(keyvals...)
}

func Error(keyvals ...interface{}) {
	level.Error(Logger()).Log(keyvals...)
}

func sinks() []log.Logger {
	lock.RLock()
	defer lock.RUnlock()

	loggers := make([]log.Logger, 0, 2)
	for _, l := range []log.Logger{stdLogger, fileLogger} {
		if l != nil {
			loggers = append(loggers, level.NewFilter(l, allow))
		}
	}
	return loggers
}

func newLogger(w io.Writer) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func openLogFile(savePath string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(savePath), 0775); err != nil {
		return nil, err
	}
	return os.OpenFile(savePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0664)
}
