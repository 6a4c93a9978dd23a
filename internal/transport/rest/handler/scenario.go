package handler

import (
	"encoding/json"
	"greenmind/internal/model"
	"greenmind/internal/service"
	"greenmind/internal/transport/rest/middleware"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

const maxImportBytes = 8 << 20

// ScenarioHandler handles scenario endpoints
type ScenarioHandler struct {
	svc *service.ScenarioService
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(svc *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{svc: svc}
}

// Create handles POST /v1/scenarios
func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateScenarioRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sc, err := h.svc.Generate(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sc)
}

// List handles GET /v1/scenarios
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

// Get handles GET /v1/scenarios/{id}
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// Delete handles DELETE /v1/scenarios/{id}
func (h *ScenarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	log.Printf("Scenario %s deleted by %s", id, middleware.GetUsername(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// AttachQuestions handles PUT /v1/scenarios/{id}/questions
func (h *ScenarioHandler) AttachQuestions(w http.ResponseWriter, r *http.Request) {
	var req model.AttachQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := h.svc.AttachQuestions(mux.Vars(r)["id"], req.QuestionIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// AttachQuestionSet handles PUT /v1/scenarios/{id}/question-set
func (h *ScenarioHandler) AttachQuestionSet(w http.ResponseWriter, r *http.Request) {
	var req model.AttachQuestionSetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sc, err := h.svc.AttachQuestionSet(r.Context(), mux.Vars(r)["id"], req.QuestionSetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// Simulate handles POST /v1/scenarios/{id}/simulate
func (h *ScenarioHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.Simulate(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	log.Printf("Scenario %s simulated by %s", sc.ID, middleware.GetUsername(r.Context()))
	writeJSON(w, http.StatusOK, sc)
}

// Simulated handles GET /v1/scenarios/{id}/simulated
func (h *ScenarioHandler) Simulated(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetSimulated(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Export handles GET /v1/scenarios/export
func (h *ScenarioHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="scenarios.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /v1/scenarios/import
func (h *ScenarioHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.Import(data)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": n})
}
