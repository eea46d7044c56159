package logger

import (
	"log/slog"

	"wallet_inspector/internal/app/port"
)

// slogAdapter implements port.Logger on top of a *slog.Logger.
type slogAdapter struct {
	component string
	base      *slog.Logger // nil means "use the package default at call time"
}

// NewSlogAdapter returns a port.Logger writing through the package default logger.
// component, when non-empty, is attached to every record.
func NewSlogAdapter(component string) port.Logger {
	return &slogAdapter{component: component}
}

// NewAdapterFor wraps an explicit slog logger; tests use it to capture output.
func NewAdapterFor(l *slog.Logger) port.Logger {
	return &slogAdapter{base: l}
}

func (a *slogAdapter) logger() *slog.Logger {
	l := a.base
	if l == nil {
		ensureInitialized()
		l = globalLogger
	}
	if a.component != "" {
		l = l.With("component", a.component)
	}
	return l
}

func (a *slogAdapter) Info(msg string, args ...any)  { a.logger().Info(msg, args...) }
func (a *slogAdapter) Debug(msg string, args ...any) { a.logger().Debug(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger().Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger().Error(msg, args...) }
