package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionFixture(seq int64, responses ...Response) Submission {
	return Submission{SurveyID: 1, Seq: seq, Responses: responses}
}

func TestAggregateRating(t *testing.T) {
	survey := surveyFixture()

	submissions := []Submission{
		submissionFixture(1, Response{QuestionID: 10, Answer: "1"}, Response{QuestionID: 11, Answer: "meh"}),
		submissionFixture(2, Response{QuestionID: 10, Answer: "3"}, Response{QuestionID: 11, Answer: ""}),
		submissionFixture(3, Response{QuestionID: 10, Answer: "3"}, Response{QuestionID: 11, Answer: "great"}),
	}

	results, violations := Aggregate(survey, submissions)

	require.Len(t, results, 2)
	assert.Empty(t, violations)

	rating := results[0]
	assert.Equal(t, int64(10), rating.QuestionID)
	assert.Equal(t, "Rate our service", rating.Question)
	assert.Equal(t, QuestionTypeRating, rating.Type)
	require.NotNil(t, rating.Average)
	assert.InDelta(t, 2.3333, *rating.Average, 0.0001)
	assert.Equal(t, []int{1, 0, 2}, rating.Distribution, "one bucket per declared option, in declared order")

	sum := 0
	for _, c := range rating.Distribution {
		sum += c
	}
	assert.Equal(t, 3, sum, "distribution must sum to the valid response count")
}

func TestAggregateExcludesInvalidRatingAnswer(t *testing.T) {
	survey := surveyFixture()

	submissions := []Submission{
		submissionFixture(1, Response{QuestionID: 10, Answer: "1"}, Response{QuestionID: 11, Answer: "a"}),
		submissionFixture(2, Response{QuestionID: 10, Answer: "5"}, Response{QuestionID: 11, Answer: "b"}),
	}

	results, violations := Aggregate(survey, submissions)

	require.Len(t, violations, 1)
	assert.Equal(t, int64(10), violations[0].QuestionID)
	assert.Equal(t, "5", violations[0].Answer)

	rating := results[0]
	require.NotNil(t, rating.Average)
	assert.Equal(t, 1.0, *rating.Average, "the invalid answer is excluded from the mean")
	assert.Equal(t, []int{1, 0, 0}, rating.Distribution)

	// The bad rating answer must not disturb the text question.
	assert.Equal(t, []string{"a", "b"}, results[1].Answers)
}

func TestAggregateUnknownQuestionID(t *testing.T) {
	survey := surveyFixture()

	submissions := []Submission{
		submissionFixture(1,
			Response{QuestionID: 10, Answer: "2"},
			Response{QuestionID: 11, Answer: "ok"},
			Response{QuestionID: 99, Answer: "stray"},
		),
	}

	results, violations := Aggregate(survey, submissions)

	require.Len(t, violations, 1)
	assert.Equal(t, int64(99), violations[0].QuestionID)
	require.Len(t, results, 2)
	require.NotNil(t, results[0].Average)
	assert.Equal(t, 2.0, *results[0].Average)
}

func TestAggregateNoResponses(t *testing.T) {
	survey := surveyFixture()

	results, violations := Aggregate(survey, nil)

	require.Len(t, results, 2)
	assert.Empty(t, violations)

	rating := results[0]
	assert.Nil(t, rating.Average, "average is absent with zero valid answers, not 0")
	assert.Equal(t, []int{0, 0, 0}, rating.Distribution, "all declared options appear even with zero responses")

	text := results[1]
	assert.NotNil(t, text.Answers)
	assert.Empty(t, text.Answers)
}

func TestAggregateTextPreservesSubmissionOrder(t *testing.T) {
	survey := surveyFixture()

	submissions := []Submission{
		submissionFixture(1, Response{QuestionID: 10, Answer: "1"}, Response{QuestionID: 11, Answer: "zebra"}),
		submissionFixture(2, Response{QuestionID: 10, Answer: "2"}, Response{QuestionID: 11, Answer: ""}),
		submissionFixture(3, Response{QuestionID: 10, Answer: "3"}, Response{QuestionID: 11, Answer: "apple"}),
	}

	results, _ := Aggregate(survey, submissions)

	text := results[1]
	assert.Equal(t, []string{"zebra", "", "apple"}, text.Answers,
		"verbatim answers in arrival order, empty strings included")
}

func TestAggregateDeterministic(t *testing.T) {
	survey := surveyFixture()

	submissions := []Submission{
		submissionFixture(1, Response{QuestionID: 10, Answer: "1"}, Response{QuestionID: 11, Answer: "x"}),
		submissionFixture(2, Response{QuestionID: 10, Answer: "3"}, Response{QuestionID: 11, Answer: "y"}),
		submissionFixture(3, Response{QuestionID: 10, Answer: "bad"}, Response{QuestionID: 11, Answer: "z"}),
	}

	first, firstViolations := Aggregate(survey, submissions)
	second, secondViolations := Aggregate(survey, submissions)

	assert.Equal(t, first, second)
	assert.Equal(t, firstViolations, secondViolations)
}
