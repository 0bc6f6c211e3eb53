package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"btyesteem/internal/model"
)

// ResultCache handles Redis read-through caching of stored submissions
// and of the reference corpus fed to the outlier check.
type ResultCache interface {
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	SetSubmission(ctx context.Context, submission *model.Submission) error

	GetReferenceVectors(ctx context.Context) ([][]float64, error)
	SetReferenceVectors(ctx context.Context, vectors [][]float64) error
	InvalidateReferenceVectors(ctx context.Context) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache.
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

const referenceVectorsKey = "reference:vectors"

func (c *resultCache) submissionKey(id string) string {
	return fmt.Sprintf("submission:%s", id)
}

func (c *resultCache) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	data, err := c.client.Get(ctx, c.submissionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var submission model.Submission
	if err := json.Unmarshal([]byte(data), &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *resultCache) SetSubmission(ctx context.Context, submission *model.Submission) error {
	data, err := json.Marshal(submission)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.submissionKey(submission.ID), data, c.ttl).Err()
}

func (c *resultCache) GetReferenceVectors(ctx context.Context) ([][]float64, error) {
	data, err := c.client.Get(ctx, referenceVectorsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var vectors [][]float64
	if err := json.Unmarshal([]byte(data), &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (c *resultCache) SetReferenceVectors(ctx context.Context, vectors [][]float64) error {
	data, err := json.Marshal(vectors)
	if err != nil {
		return err
	}
	// Shorter TTL: the corpus grows with every accepted submission.
	return c.client.Set(ctx, referenceVectorsKey, data, time.Hour).Err()
}

func (c *resultCache) InvalidateReferenceVectors(ctx context.Context) error {
	return c.client.Del(ctx, referenceVectorsKey).Err()
}
