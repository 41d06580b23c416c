package handlers

import (
	"io"
	"net/http"
)

// maxImportSize caps uploaded documents at 32 MiB.
const maxImportSize = 32 << 20

// Export serves the full document as a pretty-printed JSON download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="kraamlog-export.json"`)
	if _, err := io.WriteString(w, h.repo.ExportData()); err != nil {
		// Client went away mid-download, nothing to do.
		return
	}
}

// Import replaces the entire document with the uploaded JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if !h.repo.ImportData(string(body)) {
		writeError(w, http.StatusBadRequest, "not a valid kraamlog document")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"imported": true})
}
