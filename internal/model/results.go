package model

import "strconv"

// ResultItem is the per-question summary of all submitted responses.
// Average and Distribution are set for rating questions, Answers for text
// questions. Average is nil when no valid rating answer exists; it is never
// a zero masquerading as a mean. Distribution holds one count per declared
// option, in declared order, so charts can index it positionally.
type ResultItem struct {
	QuestionID   int64        `json:"question_id"`
	Question     string       `json:"question"`
	Type         QuestionType `json:"type"`
	Average      *float64     `json:"average,omitempty"`
	Distribution []int        `json:"distribution,omitempty"`
	Answers      []string     `json:"answers,omitempty"`
}

// SurveyResults is the full aggregation report, one item per question in
// survey order.
type SurveyResults struct {
	Results []ResultItem `json:"results"`
}

// Aggregate turns the complete submission set of a survey into per-question
// summaries, in the survey's question order. It is a pure function of its
// inputs: no clock, no randomness, identical output on every run.
//
// Rating answers that match no declared option value, and responses whose
// question id is not part of the survey, are excluded and reported as
// DataIntegrityErrors; they never abort aggregation of other questions.
// Submissions are expected in arrival order, which is the order text
// answers are reported in.
func Aggregate(s Survey, submissions []Submission) ([]ResultItem, []DataIntegrityError) {
	var violations []DataIntegrityError

	// Flatten to per-question answer lists, preserving arrival order.
	answersByQuestion := make(map[int64][]string)
	for _, sub := range submissions {
		for _, r := range sub.Responses {
			if _, ok := s.QuestionByID(r.QuestionID); !ok {
				violations = append(violations, DataIntegrityError{
					SurveyID:   s.ID,
					QuestionID: r.QuestionID,
					Answer:     r.Answer,
					Reason:     "response references a question not in the survey",
				})
				continue
			}
			answersByQuestion[r.QuestionID] = append(answersByQuestion[r.QuestionID], r.Answer)
		}
	}

	results := make([]ResultItem, 0, len(s.Questions))
	for _, q := range s.Questions {
		answers := answersByQuestion[q.ID]
		item := ResultItem{QuestionID: q.ID, Question: q.Text, Type: q.Type}

		switch q.Type {
		case QuestionTypeRating:
			item.Distribution = make([]int, len(q.Options))
			sum, count := 0, 0
			for _, answer := range answers {
				idx := optionIndex(q, answer)
				if idx < 0 {
					violations = append(violations, DataIntegrityError{
						SurveyID:   s.ID,
						QuestionID: q.ID,
						Answer:     answer,
						Reason:     "answer matches no declared option value",
					})
					continue
				}
				item.Distribution[idx]++
				sum += q.Options[idx].Value
				count++
			}
			if count > 0 {
				avg := float64(sum) / float64(count)
				item.Average = &avg
			}

		case QuestionTypeText:
			item.Answers = make([]string, 0, len(answers))
			item.Answers = append(item.Answers, answers...)
		}

		results = append(results, item)
	}
	return results, violations
}

func optionIndex(q Question, answer string) int {
	for i, opt := range q.Options {
		if answer == strconv.Itoa(opt.Value) {
			return i
		}
	}
	return -1
}
