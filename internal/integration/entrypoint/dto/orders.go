package dto

import (
	"github.com/pos-payments/backend/internal/application/usecase/orders"
	"github.com/pos-payments/backend/internal/domain/entity"
)

// OrderPaymentStateResponse represents one purchase order with its derived
// payment state.
type OrderPaymentStateResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	SupplierName    string  `json:"supplier_name"`
	TotalAmount     float64 `json:"total_amount"`
	TotalPaid       float64 `json:"total_paid"`
	Remaining       float64 `json:"remaining"`
	Status          string  `json:"status"`
	IsOverpaid      bool    `json:"is_overpaid"`
	ProgressPercent float64 `json:"progress_percent"`
	CreatedAt       string  `json:"created_at"`
}

// OrderStatusCountsResponse represents how many orders fell into each status.
type OrderStatusCountsResponse struct {
	Unpaid   int `json:"unpaid"`
	Partial  int `json:"partial"`
	Paid     int `json:"paid"`
	Overpaid int `json:"overpaid"`
}

// OrderPaymentStatesResponse represents the response for the payment states API.
type OrderPaymentStatesResponse struct {
	Data   []OrderPaymentStateResponse `json:"data"`
	Counts OrderStatusCountsResponse   `json:"counts"`
}

// ToOrderPaymentStatesResponse converts a ListOrderPaymentStatesOutput to an
// OrderPaymentStatesResponse DTO.
func ToOrderPaymentStatesResponse(output *orders.ListOrderPaymentStatesOutput) OrderPaymentStatesResponse {
	data := make([]OrderPaymentStateResponse, len(output.Orders))
	for i, o := range output.Orders {
		data[i] = OrderPaymentStateResponse{
			ID:              o.Order.ID.String(),
			OrderNumber:     o.Order.OrderNumber,
			SupplierName:    o.Order.SupplierName,
			TotalAmount:     o.Order.TotalAmount.InexactFloat64(),
			TotalPaid:       o.Order.TotalPaid.InexactFloat64(),
			Remaining:       o.State.Remaining.InexactFloat64(),
			Status:          string(o.State.Status),
			IsOverpaid:      o.State.IsOverpaid,
			ProgressPercent: o.State.ProgressPercent,
			CreatedAt:       o.Order.CreatedAt.Format("2006-01-02"),
		}
	}

	return OrderPaymentStatesResponse{
		Data: data,
		Counts: OrderStatusCountsResponse{
			Unpaid:   output.Counts[entity.OrderPaymentStatusUnpaid],
			Partial:  output.Counts[entity.OrderPaymentStatusPartial],
			Paid:     output.Counts[entity.OrderPaymentStatusPaid],
			Overpaid: output.Counts[entity.OrderPaymentStatusOverpaid],
		},
	}
}
