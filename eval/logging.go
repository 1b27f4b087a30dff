package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	// Logger receives diagnostics emitted while a configuration is loaded.
	Logger interface {
		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(i issue.Reported)
	}

	stdlog struct {
		out io.Writer
		err io.Writer
	}

	LogEntry struct {
		Level   LogLevel
		Message string
	}

	// ArrayLogger collects entries in memory. Used by tests and by hosts
	// that present diagnostics through their own channels.
	ArrayLogger struct {
		entries []*LogEntry
	}
)

const (
	DEBUG   = LogLevel(`debug`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
	ERR     = LogLevel(`err`)
)

func NewStdLogger() Logger {
	return &stdlog{os.Stdout, os.Stderr}
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (l *stdlog) LogIssue(i issue.Reported) {
	fmt.Fprintln(l.err, i.Error())
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

// Entries returns the messages logged at the given level, in order.
func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.Level == level {
			result = append(result, entry.Message)
		}
	}
	return
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	l.entries = append(l.entries, &LogEntry{ERR, i.Error()})
}
