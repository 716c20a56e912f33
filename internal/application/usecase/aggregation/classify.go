package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
)

// ClassifyOrderPaymentStatus derives the payment state of a purchase order
// from its total and the sum already paid.
//
//	remaining  = totalAmount - totalPaid
//	isOverpaid = remaining < 0
//	status     = overpaid | paid (remaining <= 0) | partial (paid > 0) | unpaid
//
// The progress percentage is clamped to 100; overpayment is flagged via
// IsOverpaid instead of a percentage above 100.
func ClassifyOrderPaymentStatus(totalAmount, totalPaid decimal.Decimal) entity.OrderPaymentState {
	remaining := totalAmount.Sub(totalPaid)
	isOverpaid := remaining.IsNegative()

	var status entity.OrderPaymentStatus
	switch {
	case isOverpaid:
		status = entity.OrderPaymentStatusOverpaid
	case remaining.Sign() <= 0:
		status = entity.OrderPaymentStatusPaid
	case totalPaid.Sign() > 0:
		status = entity.OrderPaymentStatusPartial
	default:
		status = entity.OrderPaymentStatusUnpaid
	}

	return entity.OrderPaymentState{
		Status:          status,
		Remaining:       remaining,
		IsOverpaid:      isOverpaid,
		ProgressPercent: paymentProgress(totalAmount, totalPaid),
	}
}

func paymentProgress(totalAmount, totalPaid decimal.Decimal) float64 {
	if totalAmount.Sign() <= 0 {
		// Zero-total orders have no meaningful denominator. A payment
		// against one shows as fully progressed, otherwise zero.
		if totalPaid.Sign() > 0 {
			return 100
		}
		return 0
	}

	progress := totalPaid.Div(totalAmount).InexactFloat64() * 100
	if progress > 100 {
		return 100
	}
	return progress
}
