package eventlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvents(t *testing.T, path string) []Event {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}

	require.NoError(t, scanner.Err())
	return events
}

func TestLoggerInitialization(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	logDir := filepath.Join(t.TempDir(), "pmb", "logs")

	err := InitializeWithDir(logDir, 7)
	assert.NoError(t, err, "Failed to initialize logger")
	assert.True(t, IsInitialized())

	assert.DirExists(t, logDir)
	assert.FileExists(t, filepath.Join(logDir, logFileName(time.Now())))

	assert.NoError(t, Close())
	assert.False(t, IsInitialized())
}

func TestLogEventWithoutLoggerIsNoop(t *testing.T) {
	resetForTest()

	assert.NoError(t, LogEvent(Event{EventType: EventTypeError, Message: "dropped"}))
	assert.False(t, IsInitialized())
	assert.NoError(t, Close())
}

func TestInvocationEvents(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	logDir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitializeWithDir(logDir, 7))
	logFile := filepath.Join(logDir, logFileName(time.Now()))

	id := NewInvocationID()
	LogInvocationStarted(id, "yarn", "/work/web", []string{"add", "typescript", "--global"})
	LogInvocationCompleted(id, "yarn", 0)
	LogInvocationFailed(id, "yarn", errors.New("spawn failed"))
	LogError("something else", errors.New("boom"))

	events := readEvents(t, logFile)
	require.Len(t, events, 4)

	started := events[0]
	assert.Equal(t, EventTypeInvocationStarted, started.EventType)
	assert.Equal(t, id, started.InvocationID)
	assert.Equal(t, "yarn", started.PackageManager)
	assert.Equal(t, "/work/web", started.Directory)
	assert.Equal(t, []string{"add", "typescript", "--global"}, started.Arguments)
	assert.False(t, started.Timestamp.IsZero())
	assert.Nil(t, started.ExitCode)

	completed := events[1]
	assert.Equal(t, EventTypeInvocationCompleted, completed.EventType)
	require.NotNil(t, completed.ExitCode)
	assert.Equal(t, 0, *completed.ExitCode)

	failed := events[2]
	assert.Equal(t, EventTypeInvocationFailed, failed.EventType)
	assert.Equal(t, "spawn failed", failed.Details["error"])

	assert.Equal(t, EventTypeError, events[3].EventType)
	assert.Empty(t, events[3].InvocationID)
}

func TestNewInvocationIDIsUnique(t *testing.T) {
	a := NewInvocationID()
	b := NewInvocationID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{writer: &buf, active: true}

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, logger.Log(Event{Timestamp: ts, EventType: EventTypeError, Message: "m"}))
	require.NoError(t, logger.Close())

	// Closed loggers drop events
	require.NoError(t, logger.Log(Event{EventType: EventTypeError, Message: "dropped"}))

	var e Event
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &e))
	assert.True(t, ts.Equal(e.Timestamp))
	assert.Equal(t, "m", e.Message)
}

func TestCleanupOldLogs(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.MkdirAll(logDir, 0o755))

	oldTime := time.Now().AddDate(0, 0, -10)
	oldLogFile := filepath.Join(logDir, logFileName(oldTime))
	require.NoError(t, os.WriteFile(oldLogFile, []byte("old log"), 0o644))
	require.NoError(t, os.Chtimes(oldLogFile, oldTime, oldTime))

	unrelated := filepath.Join(logDir, "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))
	require.NoError(t, os.Chtimes(unrelated, oldTime, oldTime))

	recentLogFile := filepath.Join(logDir, logFileName(time.Now()))
	require.NoError(t, os.WriteFile(recentLogFile, []byte("recent log"), 0o644))

	cleanupOldLogs(logDir, 7)

	assert.NoFileExists(t, oldLogFile)
	assert.FileExists(t, unrelated)
	assert.FileExists(t, recentLogFile)
}

func TestCleanupOldLogsHonorsRetention(t *testing.T) {
	logDir := t.TempDir()

	fiveDaysAgo := time.Now().AddDate(0, 0, -5)
	logFile := filepath.Join(logDir, logFileName(fiveDaysAgo))
	require.NoError(t, os.WriteFile(logFile, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(logFile, fiveDaysAgo, fiveDaysAgo))

	cleanupOldLogs(logDir, 7)
	assert.FileExists(t, logFile)

	cleanupOldLogs(logDir, 3)
	assert.NoFileExists(t, logFile)
}
