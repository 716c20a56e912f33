package aggregation

import "github.com/pos-payments/backend/internal/domain/entity"

// GroupByMethod buckets records by their raw method string. Grouping is
// case-sensitive: "Mobile Money" and "mobile_money" land in separate
// buckets unless the caller canonicalized methods at ingestion (see
// Options.CanonicalizeMethods). Relative order within a bucket follows the
// input order.
func GroupByMethod(records []entity.PaymentRecord) map[string][]entity.PaymentRecord {
	groups := make(map[string][]entity.PaymentRecord)
	for _, record := range records {
		groups[record.Method] = append(groups[record.Method], record)
	}
	return groups
}
