package service

import (
	"context"

	"go.uber.org/zap"

	"feedbackapp/internal/cache"
	"feedbackapp/internal/model"
	"feedbackapp/internal/repository"
)

// ResultsService produces the aggregated report for a survey. Aggregation
// always runs over the complete submission set; the cache only short-cuts
// recomputation and is dropped whenever the inputs change.
type ResultsService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	resultsCache cache.ResultsCache
	logger       *zap.Logger
}

// NewResultsService creates a new results service
func NewResultsService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	resultsCache cache.ResultsCache,
	logger *zap.Logger,
) *ResultsService {
	return &ResultsService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		resultsCache: resultsCache,
		logger:       logger,
	}
}

// GetResults returns per-question summaries for the survey, serving a
// cached report when one exists. Integrity violations found during
// aggregation are logged and the offending responses excluded; they never
// fail the report.
func (s *ResultsService) GetResults(ctx context.Context, surveyID int64) (*model.SurveyResults, error) {
	cached, err := s.resultsCache.Get(ctx, surveyID)
	if err != nil {
		s.logger.Warn("results cache read failed",
			zap.Int64("surveyId", surveyID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, &model.NotFoundError{Resource: "survey", ID: surveyID}
	}

	stored, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	submissions := make([]model.Submission, 0, len(stored))
	for _, sub := range stored {
		submissions = append(submissions, *sub)
	}

	items, violations := model.Aggregate(*survey, submissions)
	for i := range violations {
		s.logger.Warn("integrity violation excluded from aggregation",
			zap.Int64("surveyId", violations[i].SurveyID),
			zap.Int64("questionId", violations[i].QuestionID),
			zap.String("answer", violations[i].Answer),
			zap.String("reason", violations[i].Reason))
	}

	results := &model.SurveyResults{Results: items}
	if err := s.resultsCache.Set(ctx, surveyID, results); err != nil {
		s.logger.Warn("results cache write failed",
			zap.Int64("surveyId", surveyID), zap.Error(err))
	}
	return results, nil
}
