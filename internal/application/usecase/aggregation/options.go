// Package aggregation implements the payment aggregation engine: pure,
// stateless transformations that merge heterogeneous payment collections,
// deduplicate them, and derive summaries, trends, and order payment states.
// No function in this package performs I/O or returns an error; malformed
// input degrades to documented neutral defaults.
package aggregation

import "strings"

// Options controls normalization behavior at ingestion time.
type Options struct {
	// BaseCurrency is assigned to records whose source row has no currency.
	BaseCurrency string

	// CanonicalizeMethods lowercases method strings and collapses
	// whitespace to underscores at ingestion ("Mobile Money" and
	// "mobile_money" land in the same bucket). Grouping itself stays
	// case-sensitive on whatever string survives ingestion.
	CanonicalizeMethods bool
}

// DefaultOptions returns the options used when the caller passes the zero value.
func DefaultOptions() Options {
	return Options{
		BaseCurrency:        "USD",
		CanonicalizeMethods: false,
	}
}

func (o Options) withDefaults() Options {
	if o.BaseCurrency == "" {
		o.BaseCurrency = DefaultOptions().BaseCurrency
	}
	return o
}

// CanonicalMethod converts a raw method string to its canonical form.
func CanonicalMethod(raw string) string {
	canonical := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(canonical), "_")
}
