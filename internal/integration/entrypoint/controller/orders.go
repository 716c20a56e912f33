package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pos-payments/backend/internal/application/usecase/orders"
	"github.com/pos-payments/backend/internal/integration/entrypoint/dto"
)

// OrdersController handles purchase order payment state endpoints.
type OrdersController struct {
	listOrderPaymentStatesUseCase *orders.ListOrderPaymentStatesUseCase
}

// NewOrdersController creates a new orders controller instance.
func NewOrdersController(listOrderPaymentStatesUseCase *orders.ListOrderPaymentStatesUseCase) *OrdersController {
	return &OrdersController{
		listOrderPaymentStatesUseCase: listOrderPaymentStatesUseCase,
	}
}

// ListPaymentStates handles GET /purchase-orders/payment-states requests.
func (c *OrdersController) ListPaymentStates(ctx *gin.Context) {
	input := orders.ListOrderPaymentStatesInput{
		Status: ctx.Query("status"),
	}

	output, err := c.listOrderPaymentStatesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderPaymentStatesResponse(output))
}
