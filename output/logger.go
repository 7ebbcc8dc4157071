package output

import (
	"fmt"
	"log"
	"os"
)

var _ Logger = (*StdLogger)(nil)

// StdLogger is a Logger over a standard library log.Logger.
type StdLogger struct {
	logger *log.Logger
}

// NewStdLogger wraps logger. A nil logger defaults to stderr.
func NewStdLogger(logger *log.Logger) *StdLogger {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &StdLogger{logger: logger}
}

func (l *StdLogger) log(level, message string) {
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *StdLogger) Debug(msg string) {
	l.log("DEBUG", msg)
}

func (l *StdLogger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *StdLogger) Info(msg string) {
	l.log("INFO", msg)
}

func (l *StdLogger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *StdLogger) Warn(msg string) {
	l.log("WARN", msg)
}

func (l *StdLogger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l *StdLogger) Error(msg string) {
	l.log("ERROR", msg)
}

func (l *StdLogger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
