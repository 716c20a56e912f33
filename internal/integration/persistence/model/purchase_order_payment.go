package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// PurchaseOrderPaymentModel represents the purchase_order_payments table.
// Column names diverge from customer_payments (total_amount,
// payment_status, payment_date); the engine's fallback chains absorb the
// variants.
type PurchaseOrderPaymentModel struct {
	ID              string          `gorm:"type:varchar(64);primaryKey"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(8)"`
	PaymentMethod   string          `gorm:"type:varchar(32)"`
	PaymentStatus   string          `gorm:"type:varchar(16);index"`
	Fee             decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	ReferenceNumber string          `gorm:"type:varchar(64)"`
	PaymentDate     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the PurchaseOrderPaymentModel.
func (PurchaseOrderPaymentModel) TableName() string {
	return "purchase_order_payments"
}

// ToRawRecord converts the row to the loosely-typed form the aggregation
// engine normalizes.
func (m *PurchaseOrderPaymentModel) ToRawRecord() valueobject.RawRecord {
	return valueobject.RawRecord{
		"id":               m.ID,
		"total_amount":     m.TotalAmount,
		"currency":         m.Currency,
		"payment_method":   m.PaymentMethod,
		"payment_status":   m.PaymentStatus,
		"fee":              m.Fee,
		"reference_number": m.ReferenceNumber,
		"payment_date":     m.PaymentDate,
	}
}
