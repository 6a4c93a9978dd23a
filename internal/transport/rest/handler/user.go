package handler

import (
	"encoding/json"
	"greenmind/internal/model"
	"greenmind/internal/service"
	"net/http"
)

// UserHandler exposes the simulated population
type UserHandler struct {
	svc *service.ScenarioService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.ScenarioService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Users())
}

// Sync handles POST /v1/users/sync
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.SyncUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"synced": n})
}

// Upsert handles POST /v1/users
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var users []model.User
	if err := json.NewDecoder(r.Body).Decode(&users); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.UpsertUsers(r.Context(), users)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"upserted": n})
}
