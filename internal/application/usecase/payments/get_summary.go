package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
)

// GetSummaryInput represents the input for computing a payment summary.
type GetSummaryInput struct {
	StartDate time.Time
	EndDate   time.Time

	// Compare requests a trend delta versus the window of equal length
	// immediately preceding [StartDate, EndDate].
	Compare bool

	Status   string
	Method   string
	Currency string
}

// GetSummaryOutput represents the output of computing a payment summary.
type GetSummaryOutput struct {
	Summary aggregation.Summary
	Trend   *aggregation.TrendDelta
}

// GetSummaryUseCase computes the merged summary for a period, optionally
// with a trend against the preceding period, caching results briefly.
type GetSummaryUseCase struct {
	sourceRepo     adapter.PaymentSourceRepository
	cache          adapter.SummaryCache
	sourcePriority []string
	opts           aggregation.Options
	cacheTTL       time.Duration
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	sourceRepo adapter.PaymentSourceRepository,
	cache adapter.SummaryCache,
	sourcePriority []string,
	opts aggregation.Options,
	cacheTTL time.Duration,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		sourceRepo:     sourceRepo,
		cache:          cache,
		sourcePriority: sourcePriority,
		opts:           opts,
		cacheTTL:       cacheTTL,
	}
}

// Execute computes the summary, serving from cache when a fresh entry exists.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	criteria := aggregation.FilterCriteria{
		Status:   input.Status,
		Method:   input.Method,
		Currency: input.Currency,
	}

	current := uc.summarizeWindow(ctx, input.StartDate, input.EndDate, criteria)

	output := &GetSummaryOutput{Summary: current}

	if input.Compare {
		// Source windows are inclusive on both ends, so the previous
		// period must stop just before StartDate or records timestamped
		// exactly at the boundary would be counted in both periods.
		length := input.EndDate.Sub(input.StartDate)
		prevEnd := input.StartDate.Add(-time.Nanosecond)
		prevStart := input.StartDate.Add(-length)

		previous := uc.summarizeWindow(ctx, prevStart, prevEnd, criteria)
		trend := aggregation.ComputeTrend(current, previous)
		output.Trend = &trend
	}

	return output, nil
}

// summarizeWindow returns the cached summary for a window when available,
// computing and storing it otherwise. Cache failures are logged and
// ignored: the summary is always computable from the sources.
func (uc *GetSummaryUseCase) summarizeWindow(
	ctx context.Context,
	start, end time.Time,
	criteria aggregation.FilterCriteria,
) aggregation.Summary {
	key := summaryCacheKey(start, end, criteria)

	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetSummary(ctx, key); err != nil {
			slog.Warn("Summary cache read failed", "key", key, "error", err)
		} else if ok {
			return *cached
		}
	}

	window := adapter.SourceWindow{Start: &start, End: &end}
	sources := fetchSources(ctx, uc.sourceRepo, uc.sourcePriority, window)
	merged := aggregation.MergeAndDeduplicate(sources, uc.opts)
	summary := aggregation.ComputeSummary(aggregation.FilterRecords(merged, criteria))

	if uc.cache != nil {
		if err := uc.cache.SetSummary(ctx, key, summary, uc.cacheTTL); err != nil {
			slog.Warn("Summary cache write failed", "key", key, "error", err)
		}
	}

	return summary
}

func summaryCacheKey(start, end time.Time, criteria aggregation.FilterCriteria) string {
	return fmt.Sprintf("payments:summary:%s:%s:%s:%s:%s",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
		criteria.Status,
		criteria.Method,
		criteria.Currency,
	)
}

func (uc *GetSummaryUseCase) validateInput(input GetSummaryInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
