package powermodule

import "github.com/GoCodeAlone/powermodule/container"

// LoggerID is the service id the application logger is injected under in
// module containers, so factories can take a Logger parameter.
var LoggerID = container.IDOf[Logger]()

// Logger is the structured logger the application reports through. Arguments
// are alternating key/value pairs:
//
//	logger.Info("Registered module", "module", name)
//
// *slog.Logger satisfies it, and is what the application uses when no logger
// is configured.
type Logger interface {
	// Info logs normal lifecycle events such as a module being registered.
	Info(msg string, args ...any)

	// Error logs failures that abort an operation.
	Error(msg string, args ...any)

	// Warn logs conditions that are recovered from, for example a cache write
	// that failed while the computed result is still used.
	Warn(msg string, args ...any)

	// Debug logs detail useful when diagnosing ordering or setup problems.
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
