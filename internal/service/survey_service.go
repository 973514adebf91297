package service

import (
	"context"

	"go.uber.org/zap"

	"feedbackapp/internal/cache"
	"feedbackapp/internal/model"
	"feedbackapp/internal/repository"
)

// SurveyService handles survey definition CRUD. Definitions are validated
// before they reach the store; a ValidationError always blocks persistence.
type SurveyService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	resultsCache cache.ResultsCache
	logger       *zap.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	resultsCache cache.ResultsCache,
	logger *zap.Logger,
) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		resultsCache: resultsCache,
		logger:       logger,
	}
}

// Create validates and persists a new survey. The store assigns ids to the
// survey, its questions and its options; the survey is updated in place.
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (int64, error) {
	if err := survey.Validate(); err != nil {
		return 0, err
	}

	id, err := s.surveyRepo.Create(ctx, survey)
	if err != nil {
		return 0, err
	}
	s.logger.Info("survey created",
		zap.Int64("surveyId", id),
		zap.Int("questions", len(survey.Questions)))
	return id, nil
}

// GetByID retrieves a survey by id. Returns a NotFoundError when no such
// survey exists.
func (s *SurveyService) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, &model.NotFoundError{Resource: "survey", ID: id}
	}
	return survey, nil
}

// Update revalidates and replaces an existing survey definition, then drops
// any cached results computed against the old definition.
func (s *SurveyService) Update(ctx context.Context, survey *model.Survey) error {
	if err := survey.Validate(); err != nil {
		return err
	}

	existing, err := s.surveyRepo.GetByID(ctx, survey.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &model.NotFoundError{Resource: "survey", ID: survey.ID}
	}
	survey.CreatedAt = existing.CreatedAt

	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return err
	}
	s.invalidateResults(ctx, survey.ID)
	s.logger.Info("survey updated", zap.Int64("surveyId", survey.ID))
	return nil
}

// Delete removes a survey together with its submissions and cached results.
func (s *SurveyService) Delete(ctx context.Context, id int64) error {
	if err := s.surveyRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.responseRepo.DeleteBySurveyID(ctx, id); err != nil {
		return err
	}
	s.invalidateResults(ctx, id)
	s.logger.Info("survey deleted", zap.Int64("surveyId", id))
	return nil
}

// invalidateResults drops the cached report. A cache failure is logged, not
// returned: the store is already consistent and the report will be
// recomputed on the next read.
func (s *SurveyService) invalidateResults(ctx context.Context, surveyID int64) {
	if err := s.resultsCache.Invalidate(ctx, surveyID); err != nil {
		s.logger.Warn("failed to invalidate results cache",
			zap.Int64("surveyId", surveyID), zap.Error(err))
	}
}
