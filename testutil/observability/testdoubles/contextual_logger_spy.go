package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

// SpyLogRecord represents a recorded log call. LoggerSpy records context.Background() as Context.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// logRecorder is the shared storage of LoggerSpy and ContextualLoggerSpy.
type logRecorder struct {
	mu          sync.Mutex
	records     []SpyLogRecord
	recordCalls bool
}

func (r *logRecorder) record(ctx context.Context, level, msg string, args []any) {
	if !r.recordCalls {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Records returns a copy of all records, optionally filtered by level ("" means all levels).
func (r *logRecorder) Records(level string) []SpyLogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]SpyLogRecord, 0, len(r.records))
	for _, rec := range r.records {
		if level == "" || rec.Level == level {
			result = append(result, rec)
		}
	}

	return result
}

// HasLog checks if a record with the given level and message exists.
func (r *logRecorder) HasLog(level, message string) bool {
	for _, rec := range r.Records(level) {
		if rec.Message == message {
			return true
		}
	}

	return false
}

// Count returns the total number of records across all levels.
func (r *logRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// Reset clears all records.
func (r *logRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = r.records[:0]
}

// ContextualLoggerSpy is a callback.ContextualLogger that captures calls for testing.
type ContextualLoggerSpy struct {
	logRecorder
}

// NewContextualLoggerSpy creates a ContextualLoggerSpy. With recordCalls false it discards everything.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{logRecorder: logRecorder{recordCalls: recordCalls}}
}

// DebugContext implements callback.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements callback.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements callback.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements callback.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

var _ callback.ContextualLogger = (*ContextualLoggerSpy)(nil)

// LoggerSpy is a callback.Logger that captures calls for testing.
type LoggerSpy struct {
	logRecorder
}

// NewLoggerSpy creates a LoggerSpy. With recordCalls false it discards everything.
func NewLoggerSpy(recordCalls bool) *LoggerSpy {
	return &LoggerSpy{logRecorder: logRecorder{recordCalls: recordCalls}}
}

// Debug implements callback.Logger.
func (s *LoggerSpy) Debug(msg string, args ...any) { s.record(context.Background(), "debug", msg, args) }

// Info implements callback.Logger.
func (s *LoggerSpy) Info(msg string, args ...any) { s.record(context.Background(), "info", msg, args) }

// Warn implements callback.Logger.
func (s *LoggerSpy) Warn(msg string, args ...any) { s.record(context.Background(), "warn", msg, args) }

// Error implements callback.Logger.
func (s *LoggerSpy) Error(msg string, args ...any) { s.record(context.Background(), "error", msg, args) }

var _ callback.Logger = (*LoggerSpy)(nil)
