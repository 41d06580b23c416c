package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkuiper/kraamlog/internal/models"
)

// Tasks handles GET (list) and POST (create) on tasks.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.repo.Load().Tasks)
	case http.MethodPost:
		var input models.Task
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if input.Title == "" {
			writeError(w, http.StatusBadRequest, "task title is required")
			return
		}
		writeJSON(w, http.StatusCreated, h.repo.AddTask(input))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// TaskByID handles PATCH /api/tasks/{id} with a partial update.
func (h *Handler) TaskByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch && r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := pathID(r, "/api/tasks")
	if id == "" {
		writeError(w, http.StatusBadRequest, "task id is required")
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task := h.repo.UpdateTask(id, update)
	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}
