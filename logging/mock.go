package logging

import (
	"fmt"
	"strings"
	"sync"
)

// MockLogger implements the Logger interface for testing purposes.
// It captures every log call for later verification.
type MockLogger struct {
	mu sync.RWMutex

	// Captured logs for verification
	LogEntries []LogEntry
}

// LogEntry represents a captured log entry for testing verification
type LogEntry struct {
	Level   Level
	Message string
}

// NewMockLogger creates a new mock logger for testing
func NewMockLogger() *MockLogger {
	return &MockLogger{LogEntries: make([]LogEntry, 0)}
}

func (m *MockLogger) Debug(msg string) { m.log(DebugLevel, msg) }

func (m *MockLogger) Info(msg string) { m.log(InfoLevel, msg) }

func (m *MockLogger) Warning(msg string) { m.log(WarningLevel, msg) }

func (m *MockLogger) Error(msg string) { m.log(ErrorLevel, msg) }

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.log(DebugLevel, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.log(InfoLevel, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warningf(format string, args ...interface{}) {
	m.log(WarningLevel, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Close clears the captured entries
func (m *MockLogger) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogEntries = nil
	return nil
}

func (m *MockLogger) log(level Level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogEntries = append(m.LogEntries, LogEntry{Level: level, Message: msg})
}

// Test helper methods for verification

// GetLogEntries returns all captured log entries (thread-safe copy)
func (m *MockLogger) GetLogEntries() []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]LogEntry, len(m.LogEntries))
	copy(entries, m.LogEntries)
	return entries
}

// GetLogEntriesByLevel returns log entries filtered by level
func (m *MockLogger) GetLogEntriesByLevel(level Level) []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var filtered []LogEntry
	for _, entry := range m.LogEntries {
		if entry.Level == level {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// HasLogEntry checks if a log entry with the exact message exists at the given level
func (m *MockLogger) HasLogEntry(level Level, message string) bool {
	for _, entry := range m.GetLogEntriesByLevel(level) {
		if entry.Message == message {
			return true
		}
	}
	return false
}

// HasLogEntryContaining checks if any log entry at the level contains the specified text
func (m *MockLogger) HasLogEntryContaining(level Level, text string) bool {
	for _, entry := range m.GetLogEntriesByLevel(level) {
		if strings.Contains(entry.Message, text) {
			return true
		}
	}
	return false
}

// GetLogCount returns the total number of captured log entries
func (m *MockLogger) GetLogCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.LogEntries)
}

// GetLogCountByLevel returns the number of log entries for a specific level
func (m *MockLogger) GetLogCountByLevel(level Level) int {
	return len(m.GetLogEntriesByLevel(level))
}

// ClearLogEntries clears all captured log entries
func (m *MockLogger) ClearLogEntries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogEntries = make([]LogEntry, 0)
}
