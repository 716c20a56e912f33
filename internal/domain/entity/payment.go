// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"

	// PaymentStatusUnknown is assigned when a source row carries a status
	// value outside the recognized taxonomy. Unknown records still count
	// toward totals but never toward the success rate numerator.
	PaymentStatusUnknown PaymentStatus = "unknown"
)

// ParsePaymentStatus maps a raw status string onto the status taxonomy.
// Unrecognized values pass through as PaymentStatusUnknown.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed:
		return PaymentStatus(raw)
	default:
		return PaymentStatusUnknown
	}
}

// PaymentRecord is the normalized form of a payment row, regardless of
// which backend table it originated from. Field variants are resolved once
// at ingestion; everything downstream works with this shape only.
type PaymentRecord struct {
	ID           string
	Amount       decimal.Decimal
	Currency     string
	Method       string
	Status       PaymentStatus
	Timestamp    time.Time
	HasTimestamp bool // false when the source row had no parsable date
	Fees         decimal.Decimal
	CustomerName string
	Reference    string

	// SourceCollection records provenance only. It carries no business
	// meaning beyond dedup priority at merge time.
	SourceCollection string
}
