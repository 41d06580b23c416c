// Package handlers exposes the repository over a localhost REST API
// for the browser UI.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mkuiper/kraamlog/internal/data"
	"github.com/mkuiper/kraamlog/internal/logging"
)

// Handler groups the HTTP endpoints around a single repository.
type Handler struct {
	repo *data.Repository
}

// Register attaches all API routes to the mux.
func Register(mux *http.ServeMux, repo *data.Repository) {
	h := &Handler{repo: repo}

	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/data", h.Data)
	mux.HandleFunc("/api/records/baby", h.BabyRecords)
	mux.HandleFunc("/api/records/mother", h.MotherRecords)
	mux.HandleFunc("/api/observations", h.Observations)
	mux.HandleFunc("/api/tasks", h.Tasks)
	mux.HandleFunc("/api/tasks/", h.TaskByID)
	mux.HandleFunc("/api/alerts", h.Alerts)
	mux.HandleFunc("/api/alerts/", h.AlertAcknowledge)
	mux.HandleFunc("/api/profile", h.Profile)
	mux.HandleFunc("/api/analytics", h.Analytics)
	mux.HandleFunc("/api/export", h.Export)
	mux.HandleFunc("/api/import", h.Import)
}

// writeJSON serializes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathID extracts the trailing path segment after prefix, e.g. the task
// id in /api/tasks/{id}.
func pathID(r *http.Request, prefix string) string {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	rest = strings.Trim(rest, "/")
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i]
	}
	return rest
}

// Health reports liveness for the UI's startup probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Data returns the whole document in one call. The UI loads it once at
// startup and keeps its own copy in memory.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.repo.Load())
}
