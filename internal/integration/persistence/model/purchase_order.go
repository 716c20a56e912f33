package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-payments/backend/internal/domain/entity"
)

// PurchaseOrderModel represents the purchase_orders table.
type PurchaseOrderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber  string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	SupplierName string          `gorm:"type:varchar(255);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the PurchaseOrderModel.
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToEntity converts a PurchaseOrderModel to a domain PurchaseOrder entity.
// TotalPaid is not stored on the order row; the repository aggregates it
// from purchase_order_payments.
func (m *PurchaseOrderModel) ToEntity(totalPaid decimal.Decimal) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		ID:           m.ID,
		OrderNumber:  m.OrderNumber,
		SupplierName: m.SupplierName,
		TotalAmount:  m.TotalAmount,
		TotalPaid:    totalPaid,
		CreatedAt:    m.CreatedAt,
	}
}
