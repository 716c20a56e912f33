package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-payments/backend/internal/domain/entity"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
)

type fakeOrderRepository struct {
	orders []*entity.PurchaseOrder
	err    error
}

func (f *fakeOrderRepository) FindAllWithPaidTotals(_ context.Context) ([]*entity.PurchaseOrder, error) {
	return f.orders, f.err
}

func order(number string, total, paid float64) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		ID:          uuid.New(),
		OrderNumber: number,
		TotalAmount: decimal.NewFromFloat(total),
		TotalPaid:   decimal.NewFromFloat(paid),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestListOrderPaymentStatesUseCase_Execute(t *testing.T) {
	repo := &fakeOrderRepository{
		orders: []*entity.PurchaseOrder{
			order("PO-1", 1000, 1000),
			order("PO-2", 1000, 1200),
			order("PO-3", 1000, 0),
			order("PO-4", 1000, 400),
		},
	}

	uc := NewListOrderPaymentStatesUseCase(repo)

	t.Run("classifies every order", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListOrderPaymentStatesInput{})
		require.NoError(t, err)
		require.Len(t, output.Orders, 4)

		byNumber := make(map[string]ClassifiedOrder)
		for _, c := range output.Orders {
			byNumber[c.Order.OrderNumber] = c
		}

		assert.Equal(t, entity.OrderPaymentStatusPaid, byNumber["PO-1"].State.Status)
		assert.False(t, byNumber["PO-1"].State.IsOverpaid)

		assert.Equal(t, entity.OrderPaymentStatusOverpaid, byNumber["PO-2"].State.Status)
		assert.True(t, byNumber["PO-2"].State.IsOverpaid)
		assert.Equal(t, "-200", byNumber["PO-2"].State.Remaining.String())

		assert.Equal(t, entity.OrderPaymentStatusUnpaid, byNumber["PO-3"].State.Status)

		assert.Equal(t, entity.OrderPaymentStatusPartial, byNumber["PO-4"].State.Status)
		assert.InDelta(t, 40.0, byNumber["PO-4"].State.ProgressPercent, 0.001)
	})

	t.Run("counts cover the full set even when filtered", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListOrderPaymentStatesInput{Status: "partial"})
		require.NoError(t, err)

		require.Len(t, output.Orders, 1)
		assert.Equal(t, "PO-4", output.Orders[0].Order.OrderNumber)

		assert.Equal(t, 1, output.Counts[entity.OrderPaymentStatusPaid])
		assert.Equal(t, 1, output.Counts[entity.OrderPaymentStatusOverpaid])
		assert.Equal(t, 1, output.Counts[entity.OrderPaymentStatusUnpaid])
		assert.Equal(t, 1, output.Counts[entity.OrderPaymentStatusPartial])
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListOrderPaymentStatesInput{Status: "refunded"})

		var payErr *domainerror.PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, domainerror.ErrCodeInvalidOrderStatus, payErr.Code)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		failing := NewListOrderPaymentStatesUseCase(&fakeOrderRepository{err: errors.New("db down")})

		_, err := failing.Execute(context.Background(), ListOrderPaymentStatesInput{})
		require.Error(t, err)
	})
}
