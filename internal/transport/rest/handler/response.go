package handler

import (
	"encoding/json"
	"net/http"

	"feedbackapp/internal/model"
	"feedbackapp/internal/service"
)

// ResponseHandler handles response submission endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// ResponsePayload is one answer in a submission. Answers arrive as strings;
// for rating questions the string must render one of the question's option
// values.
type ResponsePayload struct {
	QuestionID int64  `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// SubmitRequest is the request body for submitting a response set
type SubmitRequest struct {
	Responses []ResponsePayload `json:"responses" validate:"required,dive"`
}

// Submit handles POST /api/surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDVar(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	responses := make([]model.Response, 0, len(req.Responses))
	for _, rp := range req.Responses {
		responses = append(responses, model.Response{QuestionID: rp.QuestionID, Answer: rp.Answer})
	}

	submission, err := h.responseSvc.Submit(r.Context(), surveyID, responses)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": submission.ID})
}
