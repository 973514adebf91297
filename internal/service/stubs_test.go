package service

import (
	"context"

	"feedbackapp/internal/model"
)

// In-memory stand-ins for the Mongo repositories and the Redis cache.

type stubSurveyRepo struct {
	surveys map[int64]*model.Survey
	nextID  int64

	createErr error
	updated   []int64
	deleted   []int64
}

func newStubSurveyRepo(surveys ...*model.Survey) *stubSurveyRepo {
	r := &stubSurveyRepo{surveys: map[int64]*model.Survey{}, nextID: 100}
	for _, s := range surveys {
		r.surveys[s.ID] = s
	}
	return r
}

func (r *stubSurveyRepo) Create(ctx context.Context, survey *model.Survey) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	survey.ID = r.nextID
	for i := range survey.Questions {
		r.nextID++
		survey.Questions[i].ID = r.nextID
		for j := range survey.Questions[i].Options {
			r.nextID++
			survey.Questions[i].Options[j].ID = r.nextID
		}
	}
	r.surveys[survey.ID] = survey
	return survey.ID, nil
}

func (r *stubSurveyRepo) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	return r.surveys[id], nil
}

func (r *stubSurveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	r.surveys[survey.ID] = survey
	r.updated = append(r.updated, survey.ID)
	return nil
}

func (r *stubSurveyRepo) Delete(ctx context.Context, id int64) error {
	delete(r.surveys, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubResponseRepo struct {
	submissions []*model.Submission
	deleted     []int64
	createErr   error
}

func (r *stubResponseRepo) Create(ctx context.Context, submission *model.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	submission.Seq = int64(len(r.submissions) + 1)
	r.submissions = append(r.submissions, submission)
	return nil
}

func (r *stubResponseRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Submission, error) {
	var out []*model.Submission
	for _, sub := range r.submissions {
		if sub.SurveyID == surveyID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *stubResponseRepo) DeleteBySurveyID(ctx context.Context, surveyID int64) error {
	r.deleted = append(r.deleted, surveyID)
	var kept []*model.Submission
	for _, sub := range r.submissions {
		if sub.SurveyID != surveyID {
			kept = append(kept, sub)
		}
	}
	r.submissions = kept
	return nil
}

type stubResultsCache struct {
	entries     map[int64]*model.SurveyResults
	invalidated []int64
	getErr      error
	setErr      error
}

func newStubResultsCache() *stubResultsCache {
	return &stubResultsCache{entries: map[int64]*model.SurveyResults{}}
}

func (c *stubResultsCache) Get(ctx context.Context, surveyID int64) (*model.SurveyResults, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[surveyID], nil
}

func (c *stubResultsCache) Set(ctx context.Context, surveyID int64, results *model.SurveyResults) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[surveyID] = results
	return nil
}

func (c *stubResultsCache) Invalidate(ctx context.Context, surveyID int64) error {
	c.invalidated = append(c.invalidated, surveyID)
	delete(c.entries, surveyID)
	return nil
}

// ratingSurvey returns a persisted survey with one three-point rating
// question and one text question.
func ratingSurvey() *model.Survey {
	return &model.Survey{
		ID:    1,
		Title: "Service Feedback",
		Questions: []model.Question{
			{
				ID:   10,
				Text: "Rate our service",
				Type: model.QuestionTypeRating,
				Options: []model.Option{
					{ID: 100, Text: "Poor", Value: 1},
					{ID: 101, Text: "Ok", Value: 2},
					{ID: 102, Text: "Great", Value: 3},
				},
			},
			{ID: 11, Text: "Any comments?", Type: model.QuestionTypeText},
		},
	}
}
