// Package valueobject defines immutable value objects shared across layers.
package valueobject

// RawRecord is a loosely-typed payment row as fetched from a backend table.
// Field names vary per source (amount vs total_amount, status vs
// payment_status); normalization resolves the variants at ingestion.
type RawRecord map[string]any

// NamedCollection is one origin of raw payment-like records, identified by
// the backend table it was fetched from. Position in a []NamedCollection
// expresses dedup priority: earlier collections win on id conflicts.
type NamedCollection struct {
	Name    string
	Records []RawRecord
}

// Well-known source collection names, in default priority order.
const (
	SourceCustomerPayments      = "customer_payments"
	SourcePurchaseOrderPayments = "purchase_order_payments"
	SourcePaymentTransactions   = "payment_transactions"
	SourceFinanceAccounts       = "finance_accounts"
)

// DefaultSourcePriority returns the configured merge order when none is
// given explicitly.
func DefaultSourcePriority() []string {
	return []string{
		SourceCustomerPayments,
		SourcePurchaseOrderPayments,
		SourcePaymentTransactions,
		SourceFinanceAccounts,
	}
}
