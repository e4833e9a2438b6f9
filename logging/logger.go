package logging

import (
	"fmt"
	"time"
)

// Level represents the logging level
type Level int

const (
	// DebugLevel logs are typically voluminous diagnostic output
	DebugLevel Level = iota
	// InfoLevel is the default logging priority
	InfoLevel
	// WarningLevel logs are more important than Info, but don't need individual human review
	WarningLevel
	// ErrorLevel logs are high-priority operator-facing failures
	ErrorLevel
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Mode selects which sinks a logger emits to.
type Mode int

const (
	// ModeConsole emits to stdout only
	ModeConsole Mode = iota
	// ModeFile appends to a local log file only
	ModeFile
	// ModeIndex sends every record to a remote index only
	ModeIndex
	// ModeDual emits to the console and to the one configured persistent backend
	ModeDual
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeFile:
		return "file"
	case ModeIndex:
		return "index"
	case ModeDual:
		return "dual"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name from configuration into a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "console":
		return ModeConsole, nil
	case "file":
		return ModeFile, nil
	case "index", "elastic":
		return ModeIndex, nil
	case "dual":
		return ModeDual, nil
	default:
		return ModeConsole, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, name)
	}
}

// Record is a single log record handed to every active sink.
// Records are ephemeral: built per log call and discarded after dispatch.
type Record struct {
	Time      time.Time
	Level     Level
	Message   string
	CallTrace []string
}

// Logger is the logging surface handed to the rest of the project.
// There is deliberately no level threshold: every call is dispatched
// unconditionally to all active sinks.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// Close closes the logger and releases any sink resources
	Close() error
}

// Config holds the configuration for creating loggers
type Config struct {
	Mode Mode

	// File backend
	FilePath string

	// Index backend
	IndexURL  string
	IndexName string
	IndexUser string
	APIKey    string

	// ServiceName tags every emitted record
	ServiceName string
}

// DefaultConfig returns a console-only configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeConsole,
		ServiceName: "amplec",
		IndexName:   "amplec-logs",
	}
}

// Validate checks that every parameter required by the chosen mode is present.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("%w: service name is required", ErrConfiguration)
	}

	switch c.Mode {
	case ModeConsole:
		return nil
	case ModeFile:
		if c.FilePath == "" {
			return fmt.Errorf("%w: file path is required for file mode", ErrConfiguration)
		}
	case ModeIndex:
		return c.validateIndexParams()
	case ModeDual:
		// dual is console plus exactly one persistent backend
		if c.FilePath != "" && c.IndexURL != "" {
			return fmt.Errorf("%w: dual mode takes either a file path or an index URL, not both", ErrConfiguration)
		}
		if c.FilePath == "" && c.IndexURL == "" {
			return fmt.Errorf("%w: dual mode requires a file path or an index URL", ErrConfiguration)
		}
		if c.IndexURL != "" {
			return c.validateIndexParams()
		}
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrConfiguration, int(c.Mode))
	}
	return nil
}

func (c *Config) validateIndexParams() error {
	if c.IndexURL == "" {
		return fmt.Errorf("%w: index URL is required for index mode", ErrConfiguration)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key is required for index mode", ErrConfiguration)
	}
	if c.IndexName == "" {
		return fmt.Errorf("%w: index name is required for index mode", ErrConfiguration)
	}
	return nil
}

// New creates a logger with the given configuration. It validates the
// configuration and builds the sink set for the configured mode.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	sinks, err := buildSinks(config)
	if err != nil {
		return nil, err
	}

	return NewWithSinks(sinks...), nil
}

// NewWithSinks creates a logger that dispatches to an explicit sink set.
// Useful in tests and for callers that manage sinks themselves.
func NewWithSinks(sinks ...Sink) Logger {
	return &sinkLogger{sinks: sinks}
}

func buildSinks(config *Config) ([]Sink, error) {
	var sinks []Sink

	if config.Mode == ModeConsole || config.Mode == ModeDual {
		sinks = append(sinks, newConsoleSink(config.ServiceName))
	}
	if config.Mode == ModeFile || (config.Mode == ModeDual && config.FilePath != "") {
		fileSink, err := newFileSink(config.FilePath, config.ServiceName)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fileSink)
	}
	if config.Mode == ModeIndex || (config.Mode == ModeDual && config.IndexURL != "") {
		indexSink, err := newIndexSink(config)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, indexSink)
	}

	return sinks, nil
}
