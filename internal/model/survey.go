package model

import (
	"strconv"
	"time"
)

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeRating QuestionType = "rating" // closed numeric choice
	QuestionTypeText   QuestionType = "text"   // free-form answer
)

// Option is one selectable choice of a rating question. Value is used for
// both aggregation and display; values must be distinct within a question.
type Option struct {
	ID    int64  `json:"id,omitempty" bson:"id,omitempty"`
	Text  string `json:"text" bson:"text"`
	Value int    `json:"value" bson:"value"`
}

// Question is a single prompt in a survey. A rating question carries a
// non-empty ordered option set; a text question carries none.
type Question struct {
	ID      int64        `json:"id,omitempty" bson:"id,omitempty"`
	Text    string       `json:"text" bson:"text"`
	Type    QuestionType `json:"type" bson:"type"`
	Options []Option     `json:"options" bson:"options"`
}

// Survey is a named collection of ordered questions. Question order is the
// presentation and report order. Ids are assigned by the storage layer on
// persist; a zero id means the entity is still a draft.
type Survey struct {
	ID          int64      `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty" bson:"updatedAt"`
}

// DefaultRatingOptions returns the five-point option set new rating
// questions start with.
func DefaultRatingOptions() []Option {
	return []Option{
		{Text: "Very Poor", Value: 1},
		{Text: "Poor", Value: 2},
		{Text: "Average", Value: 3},
		{Text: "Good", Value: 4},
		{Text: "Excellent", Value: 5},
	}
}

// Persisted reports whether the survey has been assigned an id by the store.
func (s Survey) Persisted() bool {
	return s.ID != 0
}

// QuestionByID returns the question with the given id.
func (s Survey) QuestionByID(id int64) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// HasOptionValue reports whether v is one of the question's declared
// option values.
func (q Question) HasOptionValue(v int) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// AddQuestion returns a copy of the survey with a new question of the given
// type appended: an empty prompt, and for rating questions the default
// five-point option set. The receiver is not modified.
func (s Survey) AddQuestion(qt QuestionType) Survey {
	q := Question{Type: qt}
	if qt == QuestionTypeRating {
		q.Options = DefaultRatingOptions()
	}
	questions := make([]Question, len(s.Questions), len(s.Questions)+1)
	copy(questions, s.Questions)
	s.Questions = append(questions, q)
	return s
}

// UpdateQuestionText returns a copy of the survey with the prompt of the
// question at index replaced. An out-of-range index panics: it is a caller
// bug, not a recoverable condition.
func (s Survey) UpdateQuestionText(index int, text string) Survey {
	questions := append([]Question(nil), s.Questions...)
	questions[index].Text = text
	s.Questions = questions
	return s
}

// UpdateQuestionType returns a copy of the survey with the type of the
// question at index replaced. The options are regenerated to match the new
// type (default five-point set for rating, none for text) so type and
// options can never disagree. An out-of-range index panics.
func (s Survey) UpdateQuestionType(index int, qt QuestionType) Survey {
	questions := append([]Question(nil), s.Questions...)
	questions[index].Type = qt
	if qt == QuestionTypeRating {
		questions[index].Options = DefaultRatingOptions()
	} else {
		questions[index].Options = nil
	}
	s.Questions = questions
	return s
}

// Validate checks the survey definition: the title must be non-empty, every
// question needs a prompt, and rating questions need a non-empty option set
// with pairwise-distinct values. Returns a *ValidationError naming the
// first offending field.
func (s Survey) Validate() error {
	if s.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	for i, q := range s.Questions {
		if q.Text == "" {
			return &ValidationError{Field: questionField(i, "text"), Message: "question text is required"}
		}
		switch q.Type {
		case QuestionTypeRating:
			if len(q.Options) == 0 {
				return &ValidationError{Field: questionField(i, "options"), Message: "rating question needs at least one option"}
			}
			seen := make(map[int]bool, len(q.Options))
			for _, opt := range q.Options {
				if seen[opt.Value] {
					return &ValidationError{Field: questionField(i, "options"), Message: "option values must be distinct"}
				}
				seen[opt.Value] = true
			}
		case QuestionTypeText:
			if len(q.Options) != 0 {
				return &ValidationError{Field: questionField(i, "options"), Message: "text question cannot have options"}
			}
		default:
			return &ValidationError{Field: questionField(i, "type"), Message: "unknown question type"}
		}
	}
	return nil
}

func questionField(index int, field string) string {
	return "questions[" + strconv.Itoa(index) + "]." + field
}
