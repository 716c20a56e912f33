package adapter

import (
	"context"
	"time"
)

// ReportStorage persists generated report files and issues time-limited
// download URLs for them.
type ReportStorage interface {
	Save(ctx context.Context, fileName string, data []byte) (key string, err error)
	TemporaryURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
