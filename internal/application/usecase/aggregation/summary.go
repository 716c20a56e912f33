package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
)

// Summary holds aggregate statistics over a set of payment records.
// Monetary totals are exact decimals. SuccessRate and AverageTicket are
// unrounded floats; presentation rounding belongs to the caller.
type Summary struct {
	Count          int
	CompletedCount int
	PendingCount   int
	FailedCount    int

	TotalAmount     decimal.Decimal
	CompletedAmount decimal.Decimal
	PendingAmount   decimal.Decimal
	FailedAmount    decimal.Decimal
	TotalFees       decimal.Decimal
	NetAmount       decimal.Decimal

	SuccessRate   float64 // completed / count * 100, 0 when count is 0
	AverageTicket float64 // totalAmount / count, 0 when count is 0
}

// ComputeSummary derives the summary for a record set. Zero-denominator
// rates resolve to 0, never NaN or Inf.
func ComputeSummary(records []entity.PaymentRecord) Summary {
	summary := Summary{
		TotalAmount:     decimal.Zero,
		CompletedAmount: decimal.Zero,
		PendingAmount:   decimal.Zero,
		FailedAmount:    decimal.Zero,
		TotalFees:       decimal.Zero,
		NetAmount:       decimal.Zero,
	}

	for _, record := range records {
		summary.Count++
		summary.TotalAmount = summary.TotalAmount.Add(record.Amount)
		summary.TotalFees = summary.TotalFees.Add(record.Fees)

		switch record.Status {
		case entity.PaymentStatusCompleted:
			summary.CompletedCount++
			summary.CompletedAmount = summary.CompletedAmount.Add(record.Amount)
		case entity.PaymentStatusPending:
			summary.PendingCount++
			summary.PendingAmount = summary.PendingAmount.Add(record.Amount)
		case entity.PaymentStatusFailed:
			summary.FailedCount++
			summary.FailedAmount = summary.FailedAmount.Add(record.Amount)
		}
	}

	summary.NetAmount = summary.TotalAmount.Sub(summary.TotalFees)

	if summary.Count > 0 {
		summary.SuccessRate = float64(summary.CompletedCount) / float64(summary.Count) * 100
		summary.AverageTicket = summary.TotalAmount.InexactFloat64() / float64(summary.Count)
	}

	return summary
}
