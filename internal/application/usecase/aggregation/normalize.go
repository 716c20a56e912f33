package aggregation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// Fallback chains per logical field. Each chain is tried left to right and
// the first present, coercible value wins. The chains are fixed here and
// nowhere else: call sites never repeat fallback logic ad hoc.
var (
	idFields        = []string{"id", "transaction_id", "payment_id"}
	amountFields    = []string{"amount", "total_amount", "amount_paid"}
	currencyFields  = []string{"currency", "currency_code"}
	methodFields    = []string{"method", "payment_method", "channel"}
	statusFields    = []string{"status", "payment_status", "state"}
	timestampFields = []string{"created_at", "date", "payment_date", "transaction_date"}
	feeFields       = []string{"fees", "fee", "transaction_fee"}
	customerFields  = []string{"customer_name", "customer", "payer_name"}
	referenceFields = []string{"reference", "reference_number", "receipt_number"}
)

// Timestamp layouts accepted from source rows, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts one source collection of loosely-typed rows into
// normalized payment records. It never fails: missing fields default to
// neutral values (zero amounts, "unknown" categories) and malformed
// amounts coerce to zero rather than aborting the run.
func Normalize(source valueobject.NamedCollection, opts Options) []entity.PaymentRecord {
	opts = opts.withDefaults()

	records := make([]entity.PaymentRecord, 0, len(source.Records))
	for _, raw := range source.Records {
		if raw == nil {
			continue
		}
		records = append(records, normalizeRecord(raw, source.Name, opts))
	}
	return records
}

func normalizeRecord(raw valueobject.RawRecord, sourceName string, opts Options) entity.PaymentRecord {
	record := entity.PaymentRecord{
		ID:               stringField(raw, idFields, ""),
		Amount:           amountField(raw, amountFields),
		Currency:         stringField(raw, currencyFields, opts.BaseCurrency),
		Method:           stringField(raw, methodFields, "unknown"),
		Status:           statusField(raw),
		Fees:             amountField(raw, feeFields),
		CustomerName:     stringField(raw, customerFields, ""),
		Reference:        stringField(raw, referenceFields, ""),
		SourceCollection: sourceName,
	}

	if ts, ok := timestampField(raw); ok {
		record.Timestamp = ts
		record.HasTimestamp = true
	}

	if opts.CanonicalizeMethods {
		record.Method = CanonicalMethod(record.Method)
	}

	return record
}

func stringField(raw valueobject.RawRecord, chain []string, fallback string) string {
	for _, key := range chain {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		case json.Number:
			return v.String()
		}
	}
	return fallback
}

// amountField resolves a monetary fallback chain, coercing whatever value
// type the source row carries. Malformed values count as zero.
func amountField(raw valueobject.RawRecord, chain []string) decimal.Decimal {
	for _, key := range chain {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if amount, ok := coerceAmount(value); ok {
			return amount
		}
	}
	return decimal.Zero
}

func coerceAmount(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		if parsed, err := decimal.NewFromString(v.String()); err == nil {
			return parsed, true
		}
	case string:
		if parsed, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
	}
	return decimal.Zero, false
}

func statusField(raw valueobject.RawRecord) entity.PaymentStatus {
	rawStatus := stringField(raw, statusFields, "")
	return entity.ParsePaymentStatus(strings.ToLower(strings.TrimSpace(rawStatus)))
}

func timestampField(raw valueobject.RawRecord) (time.Time, bool) {
	for _, key := range timestampFields {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case time.Time:
			if !v.IsZero() {
				return v, true
			}
		case *time.Time:
			if v != nil && !v.IsZero() {
				return *v, true
			}
		case string:
			for _, layout := range timestampLayouts {
				if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
					return parsed, true
				}
			}
		}
	}
	return time.Time{}, false
}
