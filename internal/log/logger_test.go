package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events := []LogEvent{
		{Event: EventBrowserStarted, Provider: "claude", Directory: "/proj", Sessions: 4},
		{Event: EventSessionResumed, Provider: "claude", SessionID: "abc"},
	}
	for _, ev := range events {
		if err := logger.Append(ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Event != EventBrowserStarted || got[0].Sessions != 4 {
		t.Errorf("event 0: %+v", got[0])
	}
	if got[1].SessionID != "abc" {
		t.Errorf("event 1: %+v", got[1])
	}
	if got[0].Time.IsZero() {
		t.Error("Append must stamp zero times")
	}
}

func TestAppendPreservesExplicitTime(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	stamp := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if err := logger.Append(LogEvent{Event: EventLogsViewed, Time: stamp}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !got[0].Time.Equal(stamp) {
		t.Errorf("Time: got %v, want %v", got[0].Time, stamp)
	}
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
}
