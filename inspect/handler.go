// Package inspect serves a read-only JSON view of a composed application:
// its modules in registration order and the services its root container
// declares.
package inspect

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GoCodeAlone/powermodule"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

type servicesResponse struct {
	Services []string `json:"services"`
}

// NewHandler returns a router serving:
//
//	GET /modules          every registered module
//	GET /modules/{name}   one module; name may contain slashes
//	GET /services         the ids declared in the root container
func NewHandler(app powermodule.Application) http.Handler {
	r := chi.NewRouter()
	r.Get("/modules", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, app.Modules())
	})
	r.Get("/modules/*", func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimSuffix(chi.URLParam(req, "*"), "/")
		for _, info := range app.Modules() {
			if info.Name == name {
				writeJSON(w, http.StatusOK, info)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "module not found: " + name})
	})
	r.Get("/services", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, servicesResponse{Services: app.Container().IDs()})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
