package model

import "time"

// Response is one respondent's answer to one question. For a rating
// question the answer is the string form of one of the question's option
// values; for a text question it is unconstrained, including empty.
type Response struct {
	QuestionID int64  `json:"question_id" bson:"questionId"`
	Answer     string `json:"answer" bson:"answer"`
}

// Submission is one respondent's complete response set for a survey. Seq is
// the arrival order assigned by the store; text answers are reported in
// this order.
type Submission struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	SurveyID    int64      `json:"surveyId" bson:"surveyId"`
	Seq         int64      `json:"seq" bson:"seq"`
	Responses   []Response `json:"responses" bson:"responses"`
	SubmittedAt time.Time  `json:"submittedAt" bson:"submittedAt"`
}

// InitResponses produces one empty answer slot per question, in question
// order. This is the skeleton the completeness invariant is checked
// against: a submission must fill exactly these slots.
func InitResponses(s Survey) []Response {
	responses := make([]Response, len(s.Questions))
	for i, q := range s.Questions {
		responses[i] = Response{QuestionID: q.ID}
	}
	return responses
}

// SetAnswer returns a copy of responses with the answer for questionID
// replaced. If no slot carries that question id the slot set was not built
// with InitResponses, which is a caller bug; a *NotFoundError is returned.
func SetAnswer(responses []Response, questionID int64, answer string) ([]Response, error) {
	for i, r := range responses {
		if r.QuestionID == questionID {
			out := append([]Response(nil), responses...)
			out[i].Answer = answer
			return out, nil
		}
	}
	return nil, &NotFoundError{Resource: "response slot for question", ID: questionID}
}

// IsSubmittable reports whether the response set is ready to submit: every
// rating question has an answer matching one of its declared option values.
// Text answers may be empty; a selected option is what the rating control
// requires.
func IsSubmittable(s Survey, responses []Response) bool {
	return ValidateSubmission(s, responses) == nil
}

// ValidateSubmission checks the submission completeness invariant: the
// response set must cover the survey's question ids exactly (one answer
// per question, no duplicates, no unknowns), and every rating answer must
// be the string form of a declared option value. Text answers are accepted
// as-is, including empty.
func ValidateSubmission(s Survey, responses []Response) error {
	answered := make(map[int64]bool, len(responses))
	for _, r := range responses {
		q, ok := s.QuestionByID(r.QuestionID)
		if !ok {
			return &IncompleteSubmissionError{QuestionID: r.QuestionID, Reason: "question is not part of the survey"}
		}
		if answered[r.QuestionID] {
			return &IncompleteSubmissionError{QuestionID: r.QuestionID, Reason: "question answered more than once"}
		}
		answered[r.QuestionID] = true

		if q.Type == QuestionTypeRating {
			if r.Answer == "" {
				return &IncompleteSubmissionError{QuestionID: r.QuestionID, Reason: "rating question requires a selected option"}
			}
			if !matchesOptionValue(q, r.Answer) {
				return &IncompleteSubmissionError{QuestionID: r.QuestionID, Reason: "answer is not one of the question's option values"}
			}
		}
	}
	for _, q := range s.Questions {
		if !answered[q.ID] {
			return &IncompleteSubmissionError{QuestionID: q.ID, Reason: "question has no answer slot"}
		}
	}
	return nil
}

// matchesOptionValue compares the raw answer string against each option
// value rendered as a string, so "03" does not pass for value 3.
func matchesOptionValue(q Question, answer string) bool {
	return optionIndex(q, answer) >= 0
}
