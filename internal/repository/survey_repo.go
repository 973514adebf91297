package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"feedbackapp/internal/model"
)

// SurveyRepo handles MongoDB operations for survey definitions. Create and
// Update assign integer ids to the survey and any id-less questions and
// options; the core never invents ids itself.
type SurveyRepo interface {
	Create(ctx context.Context, survey *model.Survey) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) error
	Delete(ctx context.Context, id int64) error
}

type surveyRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewSurveyRepo creates a new survey repository
func NewSurveyRepo(db *mongo.Database) SurveyRepo {
	return &surveyRepo{
		db:         db,
		collection: db.Collection("surveys"),
	}
}

func (r *surveyRepo) Create(ctx context.Context, survey *model.Survey) (int64, error) {
	id, err := nextSequence(ctx, r.db, "surveys")
	if err != nil {
		return 0, err
	}
	survey.ID = id
	if err := r.assignQuestionIDs(ctx, survey); err != nil {
		return 0, err
	}

	survey.CreatedAt = time.Now()
	survey.UpdatedAt = survey.CreatedAt

	if _, err := r.collection.InsertOne(ctx, survey); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *surveyRepo) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	var survey model.Survey
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	if err := r.assignQuestionIDs(ctx, survey); err != nil {
		return err
	}

	survey.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": survey.ID}, survey)
	return err
}

func (r *surveyRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// assignQuestionIDs fills in ids for questions and options still in draft
// state (id zero). Already-persisted ids are kept, so responses referencing
// them stay valid across updates.
func (r *surveyRepo) assignQuestionIDs(ctx context.Context, survey *model.Survey) error {
	for i := range survey.Questions {
		if survey.Questions[i].ID == 0 {
			id, err := nextSequence(ctx, r.db, "questions")
			if err != nil {
				return err
			}
			survey.Questions[i].ID = id
		}
		for j := range survey.Questions[i].Options {
			if survey.Questions[i].Options[j].ID == 0 {
				id, err := nextSequence(ctx, r.db, "options")
				if err != nil {
					return err
				}
				survey.Questions[i].Options[j].ID = id
			}
		}
	}
	return nil
}
