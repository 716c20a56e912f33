package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// PaymentTransactionModel represents the payment_transactions table fed by
// the gateway webhook importer, which uses its own vocabulary (channel,
// state, payer_name).
type PaymentTransactionModel struct {
	TransactionID   string          `gorm:"type:varchar(64);primaryKey;column:transaction_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrencyCode    string          `gorm:"type:varchar(8)"`
	Channel         string          `gorm:"type:varchar(32)"`
	State           string          `gorm:"type:varchar(16);index"`
	TransactionFee  decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	PayerName       string          `gorm:"type:varchar(255)"`
	ReceiptNumber   string          `gorm:"type:varchar(64)"`
	TransactionDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the PaymentTransactionModel.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}

// ToRawRecord converts the row to the loosely-typed form the aggregation
// engine normalizes.
func (m *PaymentTransactionModel) ToRawRecord() valueobject.RawRecord {
	return valueobject.RawRecord{
		"transaction_id":   m.TransactionID,
		"amount":           m.Amount,
		"currency_code":    m.CurrencyCode,
		"channel":          m.Channel,
		"state":            m.State,
		"transaction_fee":  m.TransactionFee,
		"payer_name":       m.PayerName,
		"receipt_number":   m.ReceiptNumber,
		"transaction_date": m.TransactionDate,
	}
}
