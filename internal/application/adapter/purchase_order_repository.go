package adapter

import (
	"context"

	"github.com/pos-payments/backend/internal/domain/entity"
)

// PurchaseOrderRepository provides purchase orders with their paid totals
// already aggregated from the payments table.
type PurchaseOrderRepository interface {
	// FindAllWithPaidTotals returns every purchase order, TotalPaid summed
	// from its linked payments, newest first.
	FindAllWithPaidTotals(ctx context.Context) ([]*entity.PurchaseOrder, error)
}
