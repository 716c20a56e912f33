package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

func TestGetMethodBreakdownUseCase_Execute(t *testing.T) {
	repo := &fakeSourceRepository{
		collections: map[string][]valueobject.RawRecord{
			"customer_payments": {
				{"id": "1", "amount": 500.0, "method": "cash", "status": "completed"},
				{"id": "2", "amount": 200.0, "method": "mobile_money", "status": "completed"},
				{"id": "3", "amount": 400.0, "method": "cash", "status": "failed"},
			},
		},
		failing: map[string]bool{},
	}

	uc := NewGetMethodBreakdownUseCase(repo, testPriority(), aggregation.Options{})

	output, err := uc.Execute(context.Background(), GetMethodBreakdownInput{})
	require.NoError(t, err)
	require.Len(t, output.Buckets, 2)

	// Ordered by total amount descending.
	assert.Equal(t, "cash", output.Buckets[0].Method)
	assert.Equal(t, "900", output.Buckets[0].Summary.TotalAmount.String())
	assert.Equal(t, 2, output.Buckets[0].Summary.Count)

	assert.Equal(t, "mobile_money", output.Buckets[1].Method)
	assert.Equal(t, "200", output.Buckets[1].Summary.TotalAmount.String())
}
