package aggregation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTrend(t *testing.T) {
	t.Run("zero previous period saturates to zero", func(t *testing.T) {
		delta := ComputeTrend(Summary{}, Summary{})

		if delta.Revenue != 0 || delta.TransactionCount != 0 ||
			delta.SuccessRate != 0 || delta.AverageTicket != 0 {
			t.Errorf("expected all-zero delta, got %+v", delta)
		}
		for _, v := range []float64{delta.Revenue, delta.TransactionCount, delta.SuccessRate, delta.AverageTicket} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("delta must never be NaN or Inf, got %v", v)
			}
		}
	})

	t.Run("growth against zero baseline stays zero", func(t *testing.T) {
		current := Summary{
			Count:       10,
			TotalAmount: decimal.NewFromInt(5000),
			SuccessRate: 80,
		}

		delta := ComputeTrend(current, Summary{})

		if delta.Revenue != 0 {
			t.Errorf("expected revenue delta 0 for zero baseline, got %v", delta.Revenue)
		}
		if delta.TransactionCount != 0 {
			t.Errorf("expected count delta 0 for zero baseline, got %v", delta.TransactionCount)
		}
	})

	t.Run("computes rounded percent deltas", func(t *testing.T) {
		current := Summary{
			Count:         30,
			TotalAmount:   decimal.NewFromInt(1500),
			SuccessRate:   90,
			AverageTicket: 50,
		}
		previous := Summary{
			Count:         20,
			TotalAmount:   decimal.NewFromInt(1200),
			SuccessRate:   60,
			AverageTicket: 60,
		}

		delta := ComputeTrend(current, previous)

		if delta.Revenue != 25.0 {
			t.Errorf("expected revenue delta 25.0, got %v", delta.Revenue)
		}
		if delta.TransactionCount != 50.0 {
			t.Errorf("expected count delta 50.0, got %v", delta.TransactionCount)
		}
		if delta.SuccessRate != 50.0 {
			t.Errorf("expected success rate delta 50.0, got %v", delta.SuccessRate)
		}
		if delta.AverageTicket != -16.67 {
			t.Errorf("expected average ticket delta -16.67, got %v", delta.AverageTicket)
		}
	})
}
