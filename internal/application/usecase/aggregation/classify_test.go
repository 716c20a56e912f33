package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
)

func TestClassifyOrderPaymentStatus(t *testing.T) {
	cases := []struct {
		name         string
		totalAmount  float64
		totalPaid    float64
		wantStatus   entity.OrderPaymentStatus
		wantRemain   float64
		wantOverpaid bool
		wantProgress float64
	}{
		{
			name:        "fully paid at exact amount",
			totalAmount: 1000, totalPaid: 1000,
			wantStatus: entity.OrderPaymentStatusPaid, wantRemain: 0,
			wantOverpaid: false, wantProgress: 100,
		},
		{
			name:        "overpaid",
			totalAmount: 1000, totalPaid: 1200,
			wantStatus: entity.OrderPaymentStatusOverpaid, wantRemain: -200,
			wantOverpaid: true, wantProgress: 100,
		},
		{
			name:        "unpaid",
			totalAmount: 1000, totalPaid: 0,
			wantStatus: entity.OrderPaymentStatusUnpaid, wantRemain: 1000,
			wantOverpaid: false, wantProgress: 0,
		},
		{
			name:        "partial",
			totalAmount: 1000, totalPaid: 400,
			wantStatus: entity.OrderPaymentStatusPartial, wantRemain: 600,
			wantOverpaid: false, wantProgress: 40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := ClassifyOrderPaymentStatus(
				decimal.NewFromFloat(tc.totalAmount),
				decimal.NewFromFloat(tc.totalPaid),
			)

			if state.Status != tc.wantStatus {
				t.Errorf("expected status %s, got %s", tc.wantStatus, state.Status)
			}
			if !state.Remaining.Equal(decimal.NewFromFloat(tc.wantRemain)) {
				t.Errorf("expected remaining %v, got %s", tc.wantRemain, state.Remaining)
			}
			if state.IsOverpaid != tc.wantOverpaid {
				t.Errorf("expected isOverpaid %v, got %v", tc.wantOverpaid, state.IsOverpaid)
			}
			if state.ProgressPercent != tc.wantProgress {
				t.Errorf("expected progress %v, got %v", tc.wantProgress, state.ProgressPercent)
			}
		})
	}

	t.Run("zero-total order", func(t *testing.T) {
		state := ClassifyOrderPaymentStatus(decimal.Zero, decimal.Zero)
		if state.ProgressPercent != 0 {
			t.Errorf("expected progress 0 for zero-total order, got %v", state.ProgressPercent)
		}
		if state.IsOverpaid {
			t.Error("zero-total order with no payment must not be overpaid")
		}
	})

	t.Run("payment against zero-total order", func(t *testing.T) {
		state := ClassifyOrderPaymentStatus(decimal.Zero, decimal.NewFromInt(50))
		if !state.IsOverpaid {
			t.Error("payment against zero-total order is an overpayment")
		}
		if state.ProgressPercent != 100 {
			t.Errorf("expected clamped progress 100, got %v", state.ProgressPercent)
		}
	})
}
