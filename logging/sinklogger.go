package logging

import (
	"fmt"
	"os"
	"time"
)

// sinkLogger dispatches every record to all of its sinks, unconditionally.
type sinkLogger struct {
	sinks []Sink
}

func (l *sinkLogger) Debug(msg string) { l.log(DebugLevel, msg) }

func (l *sinkLogger) Info(msg string) { l.log(InfoLevel, msg) }

func (l *sinkLogger) Warning(msg string) { l.log(WarningLevel, msg) }

func (l *sinkLogger) Error(msg string) { l.log(ErrorLevel, msg) }

func (l *sinkLogger) Debugf(format string, args ...interface{}) {
	l.log(DebugLevel, fmt.Sprintf(format, args...))
}

func (l *sinkLogger) Infof(format string, args ...interface{}) {
	l.log(InfoLevel, fmt.Sprintf(format, args...))
}

func (l *sinkLogger) Warningf(format string, args ...interface{}) {
	l.log(WarningLevel, fmt.Sprintf(format, args...))
}

func (l *sinkLogger) Errorf(format string, args ...interface{}) {
	l.log(ErrorLevel, fmt.Sprintf(format, args...))
}

// log builds the record once and hands it to every sink. The call depth
// between the exported methods and callTrace is fixed; callTrace relies on it.
func (l *sinkLogger) log(level Level, msg string) {
	record := Record{
		Time:      time.Now().UTC(),
		Level:     level,
		Message:   msg,
		CallTrace: callTrace(),
	}

	for _, sink := range l.sinks {
		if err := sink.Emit(record); err != nil {
			// A failing sink must not take the caller down; the log call
			// itself returns nothing.
			fmt.Fprintf(os.Stderr, "logging: sink emit failed: %v\n", err)
		}
	}
}

func (l *sinkLogger) Close() error {
	var firstErr error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
