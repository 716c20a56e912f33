package aggregation

import (
	"strings"

	"github.com/pos-payments/backend/internal/domain/entity"
)

// FilterAll disables an exact-match filter dimension.
const FilterAll = "all"

// FilterCriteria describes the record filters applied by FilterRecords.
// Query is a case-insensitive substring match ORed across customer name,
// id, reference, method, and currency. Status, Method, and Currency are
// independent exact matches; FilterAll (or empty) disables each. All
// dimensions are ANDed together.
type FilterCriteria struct {
	Query    string
	Status   string
	Method   string
	Currency string
}

// FilterRecords returns the records satisfying every active criterion,
// preserving relative order. The input slice is never mutated.
func FilterRecords(records []entity.PaymentRecord, criteria FilterCriteria) []entity.PaymentRecord {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	filtered := make([]entity.PaymentRecord, 0, len(records))
	for _, record := range records {
		if !matchesExact(string(record.Status), criteria.Status) {
			continue
		}
		if !matchesExact(record.Method, criteria.Method) {
			continue
		}
		if !matchesExact(record.Currency, criteria.Currency) {
			continue
		}
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func matchesExact(value, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return value == filter
}

func matchesQuery(record entity.PaymentRecord, query string) bool {
	for _, field := range []string{
		record.CustomerName,
		record.ID,
		record.Reference,
		record.Method,
		record.Currency,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
