package powermodule

import (
	"fmt"
	"io"
)

// DebugModuleCapabilities writes which optional module interfaces the
// registered module name implements, with its exports and imports.
func DebugModuleCapabilities(w io.Writer, app *App, name string) {
	rec, exists := app.modules[name]
	if !exists {
		fmt.Fprintf(w, "❌ Module '%s' not found in registry\n", name)
		return
	}

	fmt.Fprintf(w, "🔍 Debugging module '%s' (type: %T, state: %s)\n", name, rec.module, rec.state)
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"Exporter", rec.caps.Exporter},
		{"Importer", rec.caps.Importer},
		{"Configurable", rec.caps.Configurable},
	} {
		status := "❌"
		if c.ok {
			status = "✅"
		}
		fmt.Fprintf(w, "   %s %s\n", status, c.name)
	}

	if len(rec.caps.Exports) > 0 {
		fmt.Fprintf(w, "   📦 Exports %d services: %v\n", len(rec.caps.Exports), rec.caps.Exports)
	}
	for _, item := range rec.caps.Imports {
		fmt.Fprintf(w, "   📥 Imports %v from %s\n", item.Items, item.ModuleName)
	}
}

// DebugAllModuleCapabilities debugs every registered module in
// registration order.
func DebugAllModuleCapabilities(w io.Writer, app *App) {
	fmt.Fprintf(w, "\n🔍 ==> DEBUG: All Module Capabilities <==\n")
	for _, name := range app.order {
		DebugModuleCapabilities(w, app, name)
		fmt.Fprintln(w)
	}
}
