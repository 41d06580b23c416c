package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkuiper/kraamlog/internal/models"
)

// BabyRecords handles GET (list) and POST (append) on baby records.
func (h *Handler) BabyRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.repo.Load().BabyRecords)
	case http.MethodPost:
		var input models.BabyRecord
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if input.Type == "" {
			writeError(w, http.StatusBadRequest, "record type is required")
			return
		}
		writeJSON(w, http.StatusCreated, h.repo.AddBabyRecord(input))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// MotherRecords handles GET (list) and POST (append) on mother records.
func (h *Handler) MotherRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.repo.Load().MotherRecords)
	case http.MethodPost:
		var input models.MotherRecord
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if input.Type == "" {
			writeError(w, http.StatusBadRequest, "record type is required")
			return
		}
		writeJSON(w, http.StatusCreated, h.repo.AddMotherRecord(input))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Observations handles GET (list) and POST (append) on family observations.
func (h *Handler) Observations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.repo.Load().FamilyObservations)
	case http.MethodPost:
		var input models.FamilyObservation
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeJSON(w, http.StatusCreated, h.repo.AddFamilyObservation(input))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
