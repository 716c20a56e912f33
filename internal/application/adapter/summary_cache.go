package adapter

import (
	"context"
	"time"

	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
)

// SummaryCache stores computed summaries for a short TTL so repeated
// dashboard loads do not refetch every source table. A miss is not an
// error; cache failures degrade to recomputation.
type SummaryCache interface {
	GetSummary(ctx context.Context, key string) (*aggregation.Summary, bool, error)
	SetSummary(ctx context.Context, key string, summary aggregation.Summary, ttl time.Duration) error
}
