package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feedbackapp/internal/config"
	"feedbackapp/internal/model"
	"feedbackapp/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	surveyRepo := repository.NewSurveyRepo(client.Database(cfg.MongoDatabase))

	survey := model.Survey{
		Title:       "Customer Feedback",
		Description: "Tell us how we did and what we could do better.",
	}
	survey = survey.
		AddQuestion(model.QuestionTypeRating).
		UpdateQuestionText(0, "How satisfied are you with our service overall?").
		AddQuestion(model.QuestionTypeRating).
		UpdateQuestionText(1, "How would you rate the speed of our support replies?").
		AddQuestion(model.QuestionTypeText).
		UpdateQuestionText(2, "What is one thing we should improve?")

	if err := survey.Validate(); err != nil {
		log.Fatalf("Seed survey is invalid: %v", err)
	}

	id, err := surveyRepo.Create(ctx, &survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	fmt.Printf("Successfully created survey '%s' with id %d (%d questions)\n",
		survey.Title, id, len(survey.Questions))
}
