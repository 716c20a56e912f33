package aggregation

import "math"

// TrendDelta holds percentage changes between a current and a prior
// comparable period, rounded to 2 decimals.
type TrendDelta struct {
	Revenue          float64
	TransactionCount float64
	SuccessRate      float64
	AverageTicket    float64
}

// ComputeTrend compares two summaries. When the previous-period value is
// zero the delta saturates to 0 rather than infinity, so a dashboard's
// first period renders stably instead of blowing up.
func ComputeTrend(current, previous Summary) TrendDelta {
	return TrendDelta{
		Revenue:          percentChange(current.TotalAmount.InexactFloat64(), previous.TotalAmount.InexactFloat64()),
		TransactionCount: percentChange(float64(current.Count), float64(previous.Count)),
		SuccessRate:      percentChange(current.SuccessRate, previous.SuccessRate),
		AverageTicket:    percentChange(current.AverageTicket, previous.AverageTicket),
	}
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*100*100) / 100
}
