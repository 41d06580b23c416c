package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkuiper/kraamlog/internal/models"
)

// Profile handles GET, PUT and DELETE on the baby profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		profile := h.repo.GetBabyProfile()
		if profile == nil {
			writeError(w, http.StatusNotFound, "no profile configured")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	case http.MethodPut, http.MethodPost:
		var input models.BabyProfile
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeJSON(w, http.StatusOK, h.repo.SaveBabyProfile(input))
	case http.MethodDelete:
		h.repo.DeleteBabyProfile()
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
