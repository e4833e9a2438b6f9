package logging

import "testing"

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Debug("debug entry")
	mock.Info("info entry")
	mock.Warningf("warning %d", 7)
	mock.Error("error entry")

	if got := mock.GetLogCount(); got != 4 {
		t.Fatalf("GetLogCount() = %d, want 4", got)
	}
	if !mock.HasLogEntry(InfoLevel, "info entry") {
		t.Error("missing exact info entry")
	}
	if !mock.HasLogEntryContaining(WarningLevel, "warning 7") {
		t.Error("missing formatted warning entry")
	}
	if got := mock.GetLogCountByLevel(ErrorLevel); got != 1 {
		t.Errorf("GetLogCountByLevel(ErrorLevel) = %d, want 1", got)
	}
}

func TestMockLoggerClear(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("kept until cleared")

	mock.ClearLogEntries()
	if got := mock.GetLogCount(); got != 0 {
		t.Errorf("GetLogCount() after clear = %d, want 0", got)
	}
}
