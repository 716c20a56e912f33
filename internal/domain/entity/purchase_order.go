// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPaymentStatus classifies how much of a purchase order has been paid.
type OrderPaymentStatus string

const (
	OrderPaymentStatusUnpaid   OrderPaymentStatus = "unpaid"
	OrderPaymentStatusPartial  OrderPaymentStatus = "partial"
	OrderPaymentStatusPaid     OrderPaymentStatus = "paid"
	OrderPaymentStatusOverpaid OrderPaymentStatus = "overpaid"
)

// PurchaseOrder represents a supplier purchase order tracked by the POS backend.
type PurchaseOrder struct {
	ID           uuid.UUID
	OrderNumber  string
	SupplierName string
	TotalAmount  decimal.Decimal
	TotalPaid    decimal.Decimal
	CreatedAt    time.Time
}

// OrderPaymentState is the derived payment view of a purchase order. It is
// recomputed on every read and never persisted.
type OrderPaymentState struct {
	Status     OrderPaymentStatus
	Remaining  decimal.Decimal
	IsOverpaid bool

	// ProgressPercent is clamped to 100 for display. Overpayment is
	// surfaced through IsOverpaid rather than a percentage above 100.
	ProgressPercent float64
}
