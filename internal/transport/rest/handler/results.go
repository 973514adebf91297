package handler

import (
	"net/http"

	"feedbackapp/internal/service"
)

// ResultsHandler handles aggregated results endpoints
type ResultsHandler struct {
	resultsSvc *service.ResultsService
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsSvc *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsSvc: resultsSvc}
}

// Get handles GET /api/surveys/{surveyId}/results
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDVar(w, r)
	if !ok {
		return
	}

	results, err := h.resultsSvc.GetResults(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
