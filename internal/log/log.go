package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type OperationType string

const (
	OpRename      OperationType = "rename"
	OpReplaceRoot OperationType = "replace_root"
	OpRebind      OperationType = "rebind"
)

type OperationLog struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Type      OperationType `json:"type"`
	Clips     []string      `json:"clips"`
	OldPath   string        `json:"old_path"`
	NewPath   string        `json:"new_path"`
	Object    string        `json:"object,omitempty"`
	Changed   int           `json:"changed_tracks"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
}

type SessionMetadata struct {
	CommandArgs   []string  `json:"command_args"`
	WorkingDir    string    `json:"working_dir"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"session_id"`
	DryRun        bool      `json:"dry_run"`
	TotalOps      int       `json:"total_operations"`
	SuccessfulOps int       `json:"successful_operations"`
	FailedOps     int       `json:"failed_operations"`
}

type LogSession struct {
	Metadata   SessionMetadata `json:"metadata"`
	Operations []OperationLog  `json:"operations"`
}

// Global singleton session manager
var (
	currentSession *LogSession
	sessionMutex   sync.Mutex
	loggingEnabled = true
)

// StartSession initializes a new logging session
func StartSession(command string, args []string, dryRun bool) error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	now := time.Now()
	currentSession = &LogSession{
		Metadata: SessionMetadata{
			CommandArgs: append([]string{command}, args...),
			WorkingDir:  wd,
			Timestamp:   now,
			SessionID:   stamp(now),
			DryRun:      dryRun,
		},
		Operations: []OperationLog{},
	}

	return nil
}

// EndSession saves the current session to disk
func EndSession() error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return nil
	}

	currentSession.tally()
	err := WriteSession(currentSession)
	currentSession = nil
	return err
}

// LogRename logs a single path rename
func LogRename(clips []string, oldPath, newPath string, changed int, err error) {
	LogOperation(OperationLog{Type: OpRename, Clips: clips, OldPath: oldPath, NewPath: newPath, Changed: changed}, err)
}

// LogReplaceRoot logs a prefix replacement
func LogReplaceRoot(clips []string, oldRoot, newRoot string, changed int, err error) {
	LogOperation(OperationLog{Type: OpReplaceRoot, Clips: clips, OldPath: oldRoot, NewPath: newRoot, Changed: changed}, err)
}

// LogRebind logs a rename driven by moving tracks onto another object
func LogRebind(clips []string, oldPath, newPath, objectID string, changed int, err error) {
	LogOperation(OperationLog{Type: OpRebind, Clips: clips, OldPath: oldPath, NewPath: newPath, Object: objectID, Changed: changed}, err)
}

// LogOperation appends op to the current session. ID, Timestamp, Success and
// Error are filled in here.
func LogOperation(op OperationLog, err error) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return
	}

	op.ID = fmt.Sprintf("%s_%d", currentSession.Metadata.SessionID, len(currentSession.Operations))
	op.Timestamp = time.Now()
	op.Success = err == nil
	if err != nil {
		op.Error = err.Error()
	}

	currentSession.Operations = append(currentSession.Operations, op)
}

// stampLayout sorts lexically in time order, so log files list oldest first
const stampLayout = "20060102_150405.000"

// stamp names sessions and their log files
func stamp(t time.Time) string {
	return t.Format(stampLayout)
}

// tally counts the session's operations into its metadata
func (s *LogSession) tally() {
	md := &s.Metadata
	md.TotalOps = len(s.Operations)
	md.SuccessfulOps, md.FailedOps = 0, 0
	for _, op := range s.Operations {
		if op.Success {
			md.SuccessfulOps++
		} else {
			md.FailedOps++
		}
	}
}

// Initialize sets up the logging system with the given configuration
func Initialize(enabled bool, retentionDays int) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	loggingEnabled = enabled

	if enabled {
		// Clean up old logs on initialization
		if err := cleanupOldLogsUnsafe(retentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to clean up old logs: %v\n", err)
		}
	}
}

func logDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".anim-tidy", "logs"), nil
}

// SessionPath returns the log file of session, named after its session ID.
// Sessions without an ID are named after the current time.
func SessionPath(session *LogSession) (string, error) {
	dir, err := logDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	name := session.Metadata.SessionID
	if name == "" {
		name = stamp(time.Now())
	}
	return filepath.Join(dir, name+".json"), nil
}

// WriteSession saves session to its log file
func WriteSession(session *LogSession) error {
	if session == nil {
		return nil
	}

	logPath, err := SessionPath(session)
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(logPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}

	return nil
}

// ReadSession loads one session log file
func ReadSession(logPath string) (*LogSession, error) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	var session LogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ReadSessions returns up to limit sessions, newest first. limit <= 0 reads all.
func ReadSessions(limit int) ([]*LogSession, error) {
	dir, err := logDir()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []*LogSession{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}

	// File names start with the timestamp
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	sessions := make([]*LogSession, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			// Skip corrupted files
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// cleanupOldLogsUnsafe performs cleanup without acquiring mutex (assumes caller holds it)
func cleanupOldLogsUnsafe(retentionDays int) error {
	dir, err := logDir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to remove old log file %s: %v\n", file, err)
				continue
			}
		}
	}

	return nil
}
