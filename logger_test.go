package powermodule

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/mock"
)

// logger writes through t.Log so output is attached to the test that
// produced it.
type logger struct {
	t *testing.T
}

func (l *logger) getCallerInfo() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	relPath, err := filepath.Rel(wd, file)
	if err != nil {
		relPath = file
	}
	return fmt.Sprintf("%s:%d", relPath, line)
}

func (l *logger) Info(msg string, args ...any)  { l.log("INFO", msg, args) }
func (l *logger) Error(msg string, args ...any) { l.log("ERROR", msg, args) }
func (l *logger) Warn(msg string, args ...any)  { l.log("WARN", msg, args) }
func (l *logger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args) }

func (l *logger) log(level, msg string, args []any) {
	l.t.Helper()
	l.t.Log(fmt.Sprintf("[%s] %s %s", l.getCallerInfo(), level, msg), args)
}

// MockLogger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.Called(msg, args)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.Called(msg, args)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.Called(msg, args)
}

func (m *MockLogger) Error(msg string, args ...interface{}) {
	m.Called(msg, args)
}
