package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"feedbackapp/internal/cache"
	"feedbackapp/internal/model"
	"feedbackapp/internal/repository"
)

// ResponseService handles response submission for a survey. A submission is
// accepted only when it satisfies the completeness invariant against the
// survey definition; accepted submissions invalidate the cached report.
type ResponseService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	resultsCache cache.ResultsCache
	logger       *zap.Logger
}

// NewResponseService creates a new response service
func NewResponseService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	resultsCache cache.ResultsCache,
	logger *zap.Logger,
) *ResponseService {
	return &ResponseService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		resultsCache: resultsCache,
		logger:       logger,
	}
}

// Submit validates a response set against the survey and persists it as one
// submission. Returns a NotFoundError for an unknown survey and an
// IncompleteSubmissionError when the set misses a question, answers one
// twice, references an unknown question, or carries a rating answer outside
// the question's option values.
func (s *ResponseService) Submit(ctx context.Context, surveyID int64, responses []model.Response) (*model.Submission, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, &model.NotFoundError{Resource: "survey", ID: surveyID}
	}

	if err := model.ValidateSubmission(*survey, responses); err != nil {
		return nil, err
	}

	submission := &model.Submission{
		ID:          uuid.NewString(),
		SurveyID:    surveyID,
		Responses:   responses,
		SubmittedAt: time.Now(),
	}
	if err := s.responseRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if err := s.resultsCache.Invalidate(ctx, surveyID); err != nil {
		s.logger.Warn("failed to invalidate results cache",
			zap.Int64("surveyId", surveyID), zap.Error(err))
	}

	s.logger.Info("submission accepted",
		zap.Int64("surveyId", surveyID),
		zap.String("submissionId", submission.ID),
		zap.Int64("seq", submission.Seq))
	return submission, nil
}
