package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feedbackapp/internal/model"
)

func newResultsService(repo *stubSurveyRepo, responses *stubResponseRepo, results *stubResultsCache) *ResultsService {
	return NewResultsService(repo, responses, results, zap.NewNop())
}

func TestResultsServiceGetResults(t *testing.T) {
	ctx := context.Background()

	t.Run("AggregatesAndCaches", func(t *testing.T) {
		responses := &stubResponseRepo{submissions: []*model.Submission{
			{ID: "a", SurveyID: 1, Seq: 1, Responses: []model.Response{
				{QuestionID: 10, Answer: "1"}, {QuestionID: 11, Answer: "slow"},
			}},
			{ID: "b", SurveyID: 1, Seq: 2, Responses: []model.Response{
				{QuestionID: 10, Answer: "3"}, {QuestionID: 11, Answer: ""},
			}},
			{ID: "c", SurveyID: 1, Seq: 3, Responses: []model.Response{
				{QuestionID: 10, Answer: "3"}, {QuestionID: 11, Answer: "great"},
			}},
		}}
		cache := newStubResultsCache()
		svc := newResultsService(newStubSurveyRepo(ratingSurvey()), responses, cache)

		results, err := svc.GetResults(ctx, 1)
		require.NoError(t, err)
		require.Len(t, results.Results, 2)

		rating := results.Results[0]
		require.NotNil(t, rating.Average)
		assert.InDelta(t, 2.3333, *rating.Average, 0.0001)
		assert.Equal(t, []int{1, 0, 2}, rating.Distribution)

		text := results.Results[1]
		assert.Equal(t, []string{"slow", "", "great"}, text.Answers)

		assert.Same(t, results, cache.entries[1], "report is cached for the next read")
	})

	t.Run("ServesCachedReport", func(t *testing.T) {
		cache := newStubResultsCache()
		cached := &model.SurveyResults{Results: []model.ResultItem{{Question: "cached"}}}
		cache.entries[1] = cached
		// No survey in the repo: a cache hit must not touch the store.
		svc := newResultsService(newStubSurveyRepo(), &stubResponseRepo{}, cache)

		results, err := svc.GetResults(ctx, 1)
		require.NoError(t, err)
		assert.Same(t, cached, results)
	})

	t.Run("CacheFailureFallsThrough", func(t *testing.T) {
		cache := newStubResultsCache()
		cache.getErr = assert.AnError
		svc := newResultsService(newStubSurveyRepo(ratingSurvey()), &stubResponseRepo{}, cache)

		results, err := svc.GetResults(ctx, 1)
		require.NoError(t, err)
		require.Len(t, results.Results, 2)
	})

	t.Run("UnknownSurvey", func(t *testing.T) {
		svc := newResultsService(newStubSurveyRepo(), &stubResponseRepo{}, newStubResultsCache())

		_, err := svc.GetResults(ctx, 9)
		var nferr *model.NotFoundError
		require.ErrorAs(t, err, &nferr)
	})

	t.Run("IntegrityViolationDoesNotFailReport", func(t *testing.T) {
		responses := &stubResponseRepo{submissions: []*model.Submission{
			{ID: "a", SurveyID: 1, Seq: 1, Responses: []model.Response{
				{QuestionID: 10, Answer: "11"}, {QuestionID: 11, Answer: "fine"},
			}},
		}}
		svc := newResultsService(newStubSurveyRepo(ratingSurvey()), responses, newStubResultsCache())

		results, err := svc.GetResults(ctx, 1)
		require.NoError(t, err)

		rating := results.Results[0]
		assert.Nil(t, rating.Average)
		assert.Equal(t, []int{0, 0, 0}, rating.Distribution)
		assert.Equal(t, []string{"fine"}, results.Results[1].Answers)
	})
}
