// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// CustomerPaymentModel represents the customer_payments table. This table
// is the oldest in the schema and uses the plain field names.
type CustomerPaymentModel struct {
	ID           string          `gorm:"type:varchar(64);primaryKey"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency     string          `gorm:"type:varchar(8)"`
	Method       string          `gorm:"type:varchar(32);index"`
	Status       string          `gorm:"type:varchar(16);index"`
	Fees         decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	CustomerName string          `gorm:"type:varchar(255)"`
	Reference    string          `gorm:"type:varchar(64)"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the CustomerPaymentModel.
func (CustomerPaymentModel) TableName() string {
	return "customer_payments"
}

// ToRawRecord converts the row to the loosely-typed form the aggregation
// engine normalizes. Keys follow this table's own column names.
func (m *CustomerPaymentModel) ToRawRecord() valueobject.RawRecord {
	return valueobject.RawRecord{
		"id":            m.ID,
		"amount":        m.Amount,
		"currency":      m.Currency,
		"method":        m.Method,
		"status":        m.Status,
		"fees":          m.Fees,
		"customer_name": m.CustomerName,
		"reference":     m.Reference,
		"created_at":    m.CreatedAt,
	}
}
