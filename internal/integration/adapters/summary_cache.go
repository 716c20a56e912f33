// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
)

const summaryKeyPrefix = "pos_payments:"

// redisSummaryCache implements adapter.SummaryCache on Redis. Summaries
// are stored as JSON under a prefixed key.
type redisSummaryCache struct {
	client *goredis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *goredis.Client) adapter.SummaryCache {
	return &redisSummaryCache{client: client}
}

// GetSummary fetches a cached summary. A missing key is a miss, not an
// error.
func (c *redisSummaryCache) GetSummary(ctx context.Context, key string) (*aggregation.Summary, bool, error) {
	payload, err := c.client.Get(ctx, summaryKeyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary aggregation.Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, true, nil
}

// SetSummary stores a summary with the given TTL.
func (c *redisSummaryCache) SetSummary(ctx context.Context, key string, summary aggregation.Summary, ttl time.Duration) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached summary: %w", err)
	}
	return nil
}
