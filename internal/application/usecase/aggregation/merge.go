package aggregation

import (
	"sort"

	"github.com/pos-payments/backend/internal/domain/entity"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// MergeAndDeduplicate normalizes every source collection, concatenates them
// in the given priority order, and removes later duplicates by id: the
// first-seen record (highest-priority source) wins silently. Overlapping
// queries against overlapping tables produce the same payment under several
// sources, and the priority order decides which rendition is canonical.
//
// Nil or empty collections are treated as empty; a caller that failed to
// fetch a subset of sources simply passes what it has. The output is sorted
// descending by timestamp, with records lacking a parsable timestamp last,
// and is stable for equal keys.
func MergeAndDeduplicate(sources []valueobject.NamedCollection, opts Options) []entity.PaymentRecord {
	merged := make([]entity.PaymentRecord, 0)
	seen := make(map[string]struct{})

	for _, source := range sources {
		for _, record := range Normalize(source, opts) {
			// Records without an id cannot be matched across sources;
			// they are kept rather than collapsed onto each other.
			if record.ID != "" {
				if _, dup := seen[record.ID]; dup {
					continue
				}
				seen[record.ID] = struct{}{}
			}
			merged = append(merged, record)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.HasTimestamp != b.HasTimestamp {
			return a.HasTimestamp
		}
		return a.Timestamp.After(b.Timestamp)
	})

	return merged
}
