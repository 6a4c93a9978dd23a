package handler

import (
	"greenmind/internal/model"
	"greenmind/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

// ResultsHandler handles feedback and analytics endpoints
type ResultsHandler struct {
	svc *service.ResultsService
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(svc *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// SubmitFeedback handles POST /v1/scenarios/{id}/feedback
func (h *ResultsHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var fb model.Feedback
	if !decodeAndValidate(w, r, &fb) {
		return
	}

	if err := h.svc.SubmitFeedback(r.Context(), mux.Vars(r)["id"], &fb); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

// Analytics handles GET /v1/scenarios/{id}/analytics
func (h *ResultsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.Analytics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}
