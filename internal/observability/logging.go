// Package observability provides structured logging for the application.
package observability

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// ClientLogger provides structured logging for client-side state operations.
type ClientLogger struct {
	component string
	logger    *Logger
}

// NewClientLogger creates a ClientLogger for the given component.
func NewClientLogger(component string) *ClientLogger {
	return &ClientLogger{component: component, logger: GlobalLogger}
}

// LogOperation logs a completed state operation.
func (l *ClientLogger) LogOperation(operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("component", l.component),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.Info("state operation", attrs...)
}

// LogError logs a failed state operation.
func (l *ClientLogger) LogError(operation string, err error) {
	l.logger.Error("state operation failed",
		slog.String("component", l.component),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
