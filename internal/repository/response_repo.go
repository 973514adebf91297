package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feedbackapp/internal/model"
)

// ResponseRepo handles MongoDB operations for submitted response sets.
// Submissions carry a per-survey arrival sequence; GetBySurveyID returns
// them in that order, which is the order text answers are reported in.
type ResponseRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Submission, error)
	DeleteBySurveyID(ctx context.Context, surveyID int64) error
}

type responseRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		db:         db,
		collection: db.Collection("submissions"),
	}
}

func (r *responseRepo) Create(ctx context.Context, submission *model.Submission) error {
	seq, err := nextSequence(ctx, r.db, fmt.Sprintf("submissions:%d", submission.SurveyID))
	if err != nil {
		return err
	}
	submission.Seq = seq

	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}

	_, err = r.collection.InsertOne(ctx, submission)
	return err
}

func (r *responseRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *responseRepo) DeleteBySurveyID(ctx context.Context, surveyID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
