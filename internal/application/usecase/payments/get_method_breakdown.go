package payments

import (
	"context"
	"sort"
	"time"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
)

// GetMethodBreakdownInput represents the input for the per-method breakdown.
type GetMethodBreakdownInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MethodBucket holds the summary for one payment method.
type MethodBucket struct {
	Method  string
	Summary aggregation.Summary
}

// GetMethodBreakdownOutput represents the output of the per-method breakdown.
type GetMethodBreakdownOutput struct {
	Buckets []MethodBucket
}

// GetMethodBreakdownUseCase groups the merged record set by payment method
// and summarizes each bucket.
type GetMethodBreakdownUseCase struct {
	sourceRepo     adapter.PaymentSourceRepository
	sourcePriority []string
	opts           aggregation.Options
}

// NewGetMethodBreakdownUseCase creates a new GetMethodBreakdownUseCase instance.
func NewGetMethodBreakdownUseCase(
	sourceRepo adapter.PaymentSourceRepository,
	sourcePriority []string,
	opts aggregation.Options,
) *GetMethodBreakdownUseCase {
	return &GetMethodBreakdownUseCase{
		sourceRepo:     sourceRepo,
		sourcePriority: sourcePriority,
		opts:           opts,
	}
}

// Execute returns method buckets ordered by total amount descending, ties
// broken alphabetically for deterministic output.
func (uc *GetMethodBreakdownUseCase) Execute(ctx context.Context, input GetMethodBreakdownInput) (*GetMethodBreakdownOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	window := adapter.SourceWindow{Start: input.StartDate, End: input.EndDate}
	sources := fetchSources(ctx, uc.sourceRepo, uc.sourcePriority, window)
	merged := aggregation.MergeAndDeduplicate(sources, uc.opts)

	groups := aggregation.GroupByMethod(merged)

	buckets := make([]MethodBucket, 0, len(groups))
	for method, records := range groups {
		buckets = append(buckets, MethodBucket{
			Method:  method,
			Summary: aggregation.ComputeSummary(records),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		cmp := buckets[i].Summary.TotalAmount.Cmp(buckets[j].Summary.TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return buckets[i].Method < buckets[j].Method
	})

	return &GetMethodBreakdownOutput{Buckets: buckets}, nil
}
