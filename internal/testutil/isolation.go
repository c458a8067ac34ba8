// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// trackedPrefixes are the environment variable prefixes the application
// reads its configuration from.
var trackedPrefixes = []string{"POWERMODULE_"}

// Isolate unsets every tracked environment variable for the duration of the
// test. The original values are restored by t.Cleanup. Tests calling it
// cannot run in parallel.
func Isolate(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if !tracked(key) {
			continue
		}
		// t.Setenv records the current value and restores it on cleanup.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func tracked(key string) bool {
	for _, prefix := range trackedPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
