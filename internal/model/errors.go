package model

import "fmt"

// ValidationError reports a malformed survey definition. It is raised at
// construction/update time and blocks persistence.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid survey: %s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing entity, e.g. an unknown survey id or an
// answer slot for a question id that was never initialized.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// IncompleteSubmissionError reports a response set that does not satisfy
// the submission completeness invariant: a required question is missing,
// answered twice, unknown to the survey, or a rating answer is outside the
// question's option values.
type IncompleteSubmissionError struct {
	QuestionID int64
	Reason     string
}

func (e *IncompleteSubmissionError) Error() string {
	if e.QuestionID != 0 {
		return fmt.Sprintf("incomplete submission: question %d: %s", e.QuestionID, e.Reason)
	}
	return "incomplete submission: " + e.Reason
}

// DataIntegrityError reports a stored response that cannot be aggregated:
// it references a question not present in the survey, or a rating answer
// that matches no declared option value. The offending response is skipped;
// aggregation of all other questions proceeds.
type DataIntegrityError struct {
	SurveyID   int64
	QuestionID int64
	Answer     string
	Reason     string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: survey %d question %d answer %q: %s",
		e.SurveyID, e.QuestionID, e.Answer, e.Reason)
}
