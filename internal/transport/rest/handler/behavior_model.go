package handler

import (
	"greenmind/internal/model"
	"greenmind/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

// BehaviorModelHandler handles behavior model and template endpoints
type BehaviorModelHandler struct {
	models    *service.BehaviorModelService
	templates *service.TemplateService
}

// NewBehaviorModelHandler creates a new behavior model handler
func NewBehaviorModelHandler(models *service.BehaviorModelService, templates *service.TemplateService) *BehaviorModelHandler {
	return &BehaviorModelHandler{
		models:    models,
		templates: templates,
	}
}

// Create handles POST /v1/behavior-models
func (h *BehaviorModelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m model.BehaviorModel
	if !decodeAndValidate(w, r, &m) {
		return
	}

	if err := h.models.Create(r.Context(), &m); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// List handles GET /v1/behavior-models
func (h *BehaviorModelHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.models.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*model.BehaviorModel{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /v1/behavior-models/{id}
func (h *BehaviorModelHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.models.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Update handles PUT /v1/behavior-models/{id}
func (h *BehaviorModelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var m model.BehaviorModel
	if !decodeAndValidate(w, r, &m) {
		return
	}

	if err := h.models.Update(r.Context(), mux.Vars(r)["id"], &m); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /v1/behavior-models/{id}
func (h *BehaviorModelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.models.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateTemplates handles POST /v1/behavior-models/{id}/templates
func (h *BehaviorModelHandler) GenerateTemplates(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateTemplatesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.templates.Generate(r.Context(), mux.Vars(r)["id"], req.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// ListTemplates handles GET /v1/behavior-models/{id}/templates
func (h *BehaviorModelHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.templates.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []model.QuestionTemplate{}
	}
	writeJSON(w, http.StatusOK, list)
}
