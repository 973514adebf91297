package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"feedbackapp/internal/model"
)

// ResultsCache handles Redis operations for aggregated survey results.
// Aggregation is a pure function of the survey and its full submission set,
// so a cached report stays correct until either changes; Invalidate is
// called on every new submission and on survey updates.
type ResultsCache interface {
	Get(ctx context.Context, surveyID int64) (*model.SurveyResults, error)
	Set(ctx context.Context, surveyID int64, results *model.SurveyResults) error
	Invalidate(ctx context.Context, surveyID int64) error
}

type resultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultsCache creates a new results cache
func NewResultsCache(client *redis.Client, ttl time.Duration) ResultsCache {
	return &resultsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultsCache) resultsKey(surveyID int64) string {
	return fmt.Sprintf("survey:%d:results", surveyID)
}

func (c *resultsCache) Get(ctx context.Context, surveyID int64) (*model.SurveyResults, error) {
	data, err := c.client.Get(ctx, c.resultsKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var results model.SurveyResults
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *resultsCache) Set(ctx context.Context, surveyID int64, results *model.SurveyResults) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.resultsKey(surveyID), data, c.ttl).Err()
}

func (c *resultsCache) Invalidate(ctx context.Context, surveyID int64) error {
	return c.client.Del(ctx, c.resultsKey(surveyID)).Err()
}
