// Package orders contains purchase-order payment state use cases.
package orders

import (
	"context"
	"fmt"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/domain/entity"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
)

// ListOrderPaymentStatesInput represents the input for listing classified orders.
type ListOrderPaymentStatesInput struct {
	// Status filters by derived payment status; empty or "all" disables it.
	Status string
}

// ClassifiedOrder pairs a purchase order with its derived payment state.
type ClassifiedOrder struct {
	Order *entity.PurchaseOrder
	State entity.OrderPaymentState
}

// ListOrderPaymentStatesOutput represents the output of listing classified orders.
type ListOrderPaymentStatesOutput struct {
	Orders []ClassifiedOrder

	// Counts holds how many orders fell into each status, over the full
	// set before filtering.
	Counts map[entity.OrderPaymentStatus]int
}

// ListOrderPaymentStatesUseCase classifies every purchase order by payment state.
type ListOrderPaymentStatesUseCase struct {
	orderRepo adapter.PurchaseOrderRepository
}

// NewListOrderPaymentStatesUseCase creates a new ListOrderPaymentStatesUseCase instance.
func NewListOrderPaymentStatesUseCase(orderRepo adapter.PurchaseOrderRepository) *ListOrderPaymentStatesUseCase {
	return &ListOrderPaymentStatesUseCase{
		orderRepo: orderRepo,
	}
}

// Execute fetches all purchase orders, derives each payment state, and
// filters by the requested status.
func (uc *ListOrderPaymentStatesUseCase) Execute(ctx context.Context, input ListOrderPaymentStatesInput) (*ListOrderPaymentStatesOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindAllWithPaidTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	counts := make(map[entity.OrderPaymentStatus]int)
	classified := make([]ClassifiedOrder, 0, len(orders))

	for _, order := range orders {
		state := aggregation.ClassifyOrderPaymentStatus(order.TotalAmount, order.TotalPaid)
		counts[state.Status]++

		if input.Status != "" && input.Status != aggregation.FilterAll &&
			string(state.Status) != input.Status {
			continue
		}

		classified = append(classified, ClassifiedOrder{Order: order, State: state})
	}

	return &ListOrderPaymentStatesOutput{
		Orders: classified,
		Counts: counts,
	}, nil
}

func (uc *ListOrderPaymentStatesUseCase) validateInput(input ListOrderPaymentStatesInput) error {
	switch entity.OrderPaymentStatus(input.Status) {
	case "", entity.OrderPaymentStatus(aggregation.FilterAll),
		entity.OrderPaymentStatusUnpaid, entity.OrderPaymentStatusPartial,
		entity.OrderPaymentStatusPaid, entity.OrderPaymentStatusOverpaid:
		return nil
	default:
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidOrderStatus,
			"status must be: unpaid, partial, paid, or overpaid",
			domainerror.ErrInvalidOrderStatus,
		)
	}
}
