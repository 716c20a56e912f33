package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/domain/entity"
	"github.com/pos-payments/backend/internal/integration/persistence/model"
)

// PurchaseOrderRepository implements purchase order data access using GORM.
type PurchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new PurchaseOrderRepository.
func NewPurchaseOrderRepository(db *gorm.DB) adapter.PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// FindAllWithPaidTotals retrieves all purchase orders, newest first, with
// each order's paid total summed from purchase_order_payments.
func (r *PurchaseOrderRepository) FindAllWithPaidTotals(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var orders []model.PurchaseOrderModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find purchase orders: %w", err)
	}

	type paidRow struct {
		PurchaseOrderID string
		TotalPaid       decimal.Decimal
	}
	var paid []paidRow
	err := r.db.WithContext(ctx).
		Model(&model.PurchaseOrderPaymentModel{}).
		Select("purchase_order_id, COALESCE(SUM(total_amount), 0) AS total_paid").
		Group("purchase_order_id").
		Scan(&paid).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum purchase order payments: %w", err)
	}

	paidByOrder := make(map[string]decimal.Decimal, len(paid))
	for _, row := range paid {
		paidByOrder[row.PurchaseOrderID] = row.TotalPaid
	}

	entities := make([]*entity.PurchaseOrder, 0, len(orders))
	for i := range orders {
		totalPaid := paidByOrder[orders[i].ID.String()]
		entities = append(entities, orders[i].ToEntity(totalPaid))
	}
	return entities, nil
}
