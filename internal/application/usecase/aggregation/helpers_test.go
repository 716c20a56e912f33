package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
)

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func testRecord(id string, amount float64, status entity.PaymentStatus) entity.PaymentRecord {
	return entity.PaymentRecord{
		ID:           id,
		Amount:       decimal.NewFromFloat(amount),
		Currency:     "USD",
		Method:       "cash",
		Status:       status,
		Timestamp:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		HasTimestamp: true,
		Fees:         decimal.Zero,
	}
}
