package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// FinanceAccountEntryModel represents the finance_accounts table, a manual
// bookkeeping ledger with yet another set of column names (amount_paid,
// date).
type FinanceAccountEntryModel struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(8)"`
	PaymentMethod string          `gorm:"type:varchar(32)"`
	Status        string          `gorm:"type:varchar(16)"`
	ReceiptNumber string          `gorm:"type:varchar(64)"`
	Date          time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the FinanceAccountEntryModel.
func (FinanceAccountEntryModel) TableName() string {
	return "finance_accounts"
}

// ToRawRecord converts the row to the loosely-typed form the aggregation
// engine normalizes.
func (m *FinanceAccountEntryModel) ToRawRecord() valueobject.RawRecord {
	return valueobject.RawRecord{
		"id":             m.ID,
		"amount_paid":    m.AmountPaid,
		"currency":       m.Currency,
		"payment_method": m.PaymentMethod,
		"status":         m.Status,
		"receipt_number": m.ReceiptNumber,
		"date":           m.Date,
	}
}
