package eventlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event being logged
type EventType string

const (
	EventTypeInvocationStarted   EventType = "invocation_started"
	EventTypeInvocationCompleted EventType = "invocation_completed"
	EventTypeInvocationFailed    EventType = "invocation_failed"
	EventTypeError               EventType = "error"
)

const (
	logFileSuffix = "-pmb.log"

	defaultRetentionDays = 7
)

// Event is a single entry in the event log. Events belonging to the same
// package manager run share an InvocationID.
type Event struct {
	Timestamp      time.Time              `json:"timestamp"`
	EventType      EventType              `json:"event_type"`
	Message        string                 `json:"message"`
	InvocationID   string                 `json:"invocation_id,omitempty"`
	PackageManager string                 `json:"package_manager,omitempty"`
	Directory      string                 `json:"directory,omitempty"`
	Arguments      []string               `json:"arguments,omitempty"`
	ExitCode       *int                   `json:"exit_code,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// Logger writes events as JSON lines
type Logger struct {
	file   *os.File
	writer io.Writer
	mu     sync.Mutex
	active bool
}

var (
	globalLogger *Logger
	once         sync.Once
)

// NewInvocationID returns a new random id used to correlate the events of one run.
func NewInvocationID() string {
	return uuid.NewString()
}

// InitializeWithDir sets up the global event logger with a log directory.
// Log files older than retentionDays are removed in the background.
func InitializeWithDir(logDir string, retentionDays int) error {
	var initErr error
	once.Do(func() {
		globalLogger = &Logger{}
		initErr = globalLogger.init(logDir, retentionDays)
	})
	return initErr
}

// resetForTest closes and forgets the global logger. Only used in tests.
func resetForTest() {
	if globalLogger != nil {
		_ = globalLogger.Close()
	}

	globalLogger = nil
	once = sync.Once{}
}

func logFileName(t time.Time) string {
	return t.Format("20060102") + logFileSuffix
}

func (l *Logger) init(logDir string, retentionDays int) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFilePath := filepath.Join(logDir, logFileName(time.Now()))

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.writer = file
	l.active = true

	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}

	go cleanupOldLogs(logDir, retentionDays)

	return nil
}

// cleanupOldLogs removes *-pmb.log files not modified within retentionDays
func cleanupOldLogs(logDir string, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, err := filepath.Match("*"+logFileSuffix, name)
		if err != nil || !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Log writes an event to the log
func (l *Logger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return nil
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := l.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	if l.file != nil {
		_ = l.file.Sync()
	}

	return nil
}

// Close closes the logger
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return nil
	}

	l.active = false
	if l.file != nil {
		return l.file.Close()
	}

	return nil
}

// LogEvent logs an event using the global logger. It is a no-op when the
// logger is not initialized.
func LogEvent(event Event) error {
	if globalLogger == nil {
		return nil
	}

	return globalLogger.Log(event)
}

// LogInvocationStarted logs a package manager run about to start
func LogInvocationStarted(invocationID, packageManager, dir string, args []string) {
	_ = LogEvent(Event{
		EventType:      EventTypeInvocationStarted,
		Message:        fmt.Sprintf("Starting %s in %s", packageManager, dir),
		InvocationID:   invocationID,
		PackageManager: packageManager,
		Directory:      dir,
		Arguments:      args,
	})
}

// LogInvocationCompleted logs the exit of a package manager run
func LogInvocationCompleted(invocationID, packageManager string, exitCode int) {
	_ = LogEvent(Event{
		EventType:      EventTypeInvocationCompleted,
		Message:        fmt.Sprintf("%s exited with code %d", packageManager, exitCode),
		InvocationID:   invocationID,
		PackageManager: packageManager,
		ExitCode:       &exitCode,
	})
}

// LogInvocationFailed logs a run that could not be prepared or started
func LogInvocationFailed(invocationID, packageManager string, err error) {
	_ = LogEvent(Event{
		EventType:      EventTypeInvocationFailed,
		Message:        fmt.Sprintf("Failed to run %s", packageManager),
		InvocationID:   invocationID,
		PackageManager: packageManager,
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	})
}

// LogError logs an error event
func LogError(message string, err error) {
	_ = LogEvent(Event{
		EventType: EventTypeError,
		Message:   message,
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	})
}

// Close closes the global logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// IsInitialized returns whether the global logger is initialized
func IsInitialized() bool {
	if globalLogger == nil {
		return false
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	return globalLogger.active
}
