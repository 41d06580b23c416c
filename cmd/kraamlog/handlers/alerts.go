package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Alerts handles GET /api/alerts, optionally filtered with
// ?acknowledged=true|false.
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	alerts := h.repo.Load().Alerts
	filter := r.URL.Query().Get("acknowledged")
	if filter != "" {
		want := filter == "true"
		filtered := alerts[:0:0]
		for _, a := range alerts {
			if a.Acknowledged == want {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}
	writeJSON(w, http.StatusOK, alerts)
}

// AlertAcknowledge handles POST /api/alerts/{id}/acknowledge.
func (h *Handler) AlertAcknowledge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/alerts"), "/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "acknowledge" || parts[0] == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var body struct {
		AcknowledgedBy    string `json:"acknowledgedBy"`
		ResolutionComment string `json:"resolutionComment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	alert := h.repo.AcknowledgeAlert(parts[0], body.AcknowledgedBy, body.ResolutionComment)
	if alert == nil {
		writeError(w, http.StatusNotFound, "alert not found")
		return
	}
	writeJSON(w, http.StatusOK, alert)
}
