package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"feedbackapp/internal/model"
	"feedbackapp/internal/service"
)

var validate = validator.New()

// SurveyHandler handles survey definition endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// OptionPayload is one rating option in a survey payload. The id is absent
// on create and present on updates of persisted options.
type OptionPayload struct {
	ID    int64  `json:"id,omitempty"`
	Text  string `json:"text" validate:"required"`
	Value int    `json:"value"`
}

// QuestionPayload is one question in a survey payload.
type QuestionPayload struct {
	ID      int64           `json:"id,omitempty"`
	Text    string          `json:"text" validate:"required"`
	Type    string          `json:"type" validate:"required,oneof=rating text"`
	Options []OptionPayload `json:"options" validate:"dive"`
}

// SurveyRequest is the request body for creating or replacing a survey
type SurveyRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions" validate:"dive"`
}

func (r SurveyRequest) toModel() model.Survey {
	survey := model.Survey{
		Title:       r.Title,
		Description: r.Description,
	}
	for _, qp := range r.Questions {
		q := model.Question{
			ID:   qp.ID,
			Text: qp.Text,
			Type: model.QuestionType(qp.Type),
		}
		for _, op := range qp.Options {
			q.Options = append(q.Options, model.Option{ID: op.ID, Text: op.Text, Value: op.Value})
		}
		survey.Questions = append(survey.Questions, q)
	}
	return survey
}

// Create handles POST /api/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	survey := req.toModel()
	if _, err := h.surveySvc.Create(r.Context(), &survey); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, survey)
}

// Get handles GET /api/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDVar(w, r)
	if !ok {
		return
	}

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Update handles PUT /api/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDVar(w, r)
	if !ok {
		return
	}

	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	survey := req.toModel()
	survey.ID = surveyID
	if err := h.surveySvc.Update(r.Context(), &survey); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Delete handles DELETE /api/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDVar(w, r)
	if !ok {
		return
	}

	if err := h.surveySvc.Delete(r.Context(), surveyID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": surveyID})
}

// Helper functions

func surveyIDVar(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["surveyId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps the core error taxonomy onto status codes: bad
// definitions and incomplete submissions are the client's fault, unknown
// ids are 404, anything else is a server error.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	var nferr *model.NotFoundError
	var ierr *model.IncompleteSubmissionError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.As(err, &nferr):
		writeError(w, http.StatusNotFound, nferr.Error())
	case errors.As(err, &ierr):
		writeError(w, http.StatusUnprocessableEntity, ierr.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
