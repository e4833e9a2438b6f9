package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Sink is a single log destination. The logger owns a closed set of
// variants: console, file and remote index.
type Sink interface {
	// Emit writes one record to the destination
	Emit(record Record) error

	// Close releases any resources held by the sink
	Close() error
}

// zerologSink emits records through a zerolog logger. Both the console
// and the file variants share this emit path.
type zerologSink struct {
	logger zerolog.Logger
	file   *os.File
}

// newConsoleSink returns a sink that writes human-readable lines to stdout.
func newConsoleSink(serviceName string) Sink {
	return newConsoleSinkTo(os.Stdout, serviceName)
}

// newConsoleSinkTo is the injectable variant used by tests.
func newConsoleSinkTo(w io.Writer, serviceName string) Sink {
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: zerolog.TimeFieldFormat, NoColor: true}
	logger := zerolog.New(writer).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &zerologSink{logger: logger}
}

// newFileSink returns a sink that appends JSON records to the given path.
func newFileSink(path, serviceName string) (Sink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	// keep the global threshold below every level so instance emit always wins
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(file).With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	return &zerologSink{logger: logger, file: file}, nil
}

func (s *zerologSink) Emit(record Record) error {
	s.event(record.Level).
		Str("call_trace", renderTrace(record.CallTrace)).
		Msg(record.Message)
	return nil
}

func (s *zerologSink) event(level Level) *zerolog.Event {
	switch level {
	case DebugLevel:
		return s.logger.Debug()
	case InfoLevel:
		return s.logger.Info()
	case WarningLevel:
		return s.logger.Warn()
	case ErrorLevel:
		return s.logger.Error()
	default:
		return s.logger.Info()
	}
}

func (s *zerologSink) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
