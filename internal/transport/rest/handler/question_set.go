package handler

import (
	"greenmind/internal/model"
	"greenmind/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

// QuestionSetHandler handles question set endpoints
type QuestionSetHandler struct {
	svc *service.QuestionSetService
}

// NewQuestionSetHandler creates a new question set handler
func NewQuestionSetHandler(svc *service.QuestionSetService) *QuestionSetHandler {
	return &QuestionSetHandler{svc: svc}
}

// Create handles POST /v1/question-sets
func (h *QuestionSetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var set model.QuestionSet
	if !decodeAndValidate(w, r, &set) {
		return
	}

	if err := h.svc.Create(r.Context(), &set); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

// List handles GET /v1/question-sets
func (h *QuestionSetHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*model.QuestionSet{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /v1/question-sets/{id}
func (h *QuestionSetHandler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// Delete handles DELETE /v1/question-sets/{id}
func (h *QuestionSetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
