package payments

import (
	"context"
	"time"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/domain/entity"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
)

// ListPaymentsInput represents the input for listing merged payments.
type ListPaymentsInput struct {
	Search    string
	Status    string
	Method    string
	Currency  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListPaymentsOutput represents the output of listing merged payments.
type ListPaymentsOutput struct {
	Records    []entity.PaymentRecord
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ListPaymentsUseCase merges every configured source, applies the request
// filters, and paginates the result.
type ListPaymentsUseCase struct {
	sourceRepo     adapter.PaymentSourceRepository
	sourcePriority []string
	opts           aggregation.Options
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(
	sourceRepo adapter.PaymentSourceRepository,
	sourcePriority []string,
	opts aggregation.Options,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		sourceRepo:     sourceRepo,
		sourcePriority: sourcePriority,
		opts:           opts,
	}
}

// Execute fetches, merges, filters, and paginates payment records.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	window := adapter.SourceWindow{Start: input.StartDate, End: input.EndDate}
	sources := fetchSources(ctx, uc.sourceRepo, uc.sourcePriority, window)

	merged := aggregation.MergeAndDeduplicate(sources, uc.opts)
	filtered := aggregation.FilterRecords(merged, aggregation.FilterCriteria{
		Query:    input.Search,
		Status:   input.Status,
		Method:   input.Method,
		Currency: input.Currency,
	})

	page, limit := normalizePagination(input.Page, input.Limit)
	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ListPaymentsOutput{
		Records:    filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func normalizePagination(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return page, limit
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
