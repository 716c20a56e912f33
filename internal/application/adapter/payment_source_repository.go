// Package adapter defines the interfaces between the application layer and
// its collaborators (persistence, cache, object storage).
package adapter

import (
	"context"
	"time"

	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// SourceWindow bounds a source fetch by record date. Nil bounds are open.
type SourceWindow struct {
	Start *time.Time
	End   *time.Time
}

// PaymentSourceRepository fetches raw payment rows from one named backend
// table. Live database implementations and stubbed fixtures are
// interchangeable behind this interface; the aggregation layer treats a
// failed source as an empty collection rather than failing the run.
type PaymentSourceRepository interface {
	// FetchCollection returns the raw rows of the named source within the
	// window. The returned collection carries the source name even when
	// empty.
	FetchCollection(ctx context.Context, name string, window SourceWindow) (valueobject.NamedCollection, error)
}
