package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// fakeSummaryCache is an in-memory SummaryCache that counts hits.
type fakeSummaryCache struct {
	entries map[string]aggregation.Summary
	hits    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]aggregation.Summary)}
}

func (c *fakeSummaryCache) GetSummary(_ context.Context, key string) (*aggregation.Summary, bool, error) {
	if summary, ok := c.entries[key]; ok {
		c.hits++
		return &summary, true, nil
	}
	return nil, false, nil
}

func (c *fakeSummaryCache) SetSummary(_ context.Context, key string, summary aggregation.Summary, _ time.Duration) error {
	c.entries[key] = summary
	return nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	repo := &fakeSourceRepository{
		collections: map[string][]valueobject.RawRecord{
			"customer_payments": {
				{"id": "1", "amount": 500.0, "status": "completed", "created_at": "2025-03-02", "fees": 10.0},
				{"id": "2", "amount": 300.0, "status": "pending", "created_at": "2025-03-03"},
			},
		},
		failing: map[string]bool{},
	}
	cache := newFakeSummaryCache()

	uc := NewGetSummaryUseCase(repo, cache, testPriority(), aggregation.Options{}, time.Minute)

	t.Run("computes summary for window", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSummaryInput{
			StartDate: mustDate("2025-03-01"),
			EndDate:   mustDate("2025-03-31"),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, output.Summary.Count)
		assert.Equal(t, "800", output.Summary.TotalAmount.String())
		assert.Equal(t, "790", output.Summary.NetAmount.String())
		assert.InDelta(t, 50.0, output.Summary.SuccessRate, 0.001)
		assert.Nil(t, output.Trend)
	})

	t.Run("serves repeat requests from cache", func(t *testing.T) {
		fetchesBefore := repo.fetchCount

		_, err := uc.Execute(context.Background(), GetSummaryInput{
			StartDate: mustDate("2025-03-01"),
			EndDate:   mustDate("2025-03-31"),
		})
		require.NoError(t, err)

		assert.Equal(t, fetchesBefore, repo.fetchCount, "expected no source fetches on cache hit")
		assert.Positive(t, cache.hits)
	})

	t.Run("compare adds trend against preceding window", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSummaryInput{
			StartDate: mustDate("2025-03-01"),
			EndDate:   mustDate("2025-03-31"),
			Compare:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, output.Trend)

		// The fake repo serves the same rows regardless of window, so the
		// previous period equals the current one and all deltas are zero.
		assert.Zero(t, output.Trend.Revenue)
		assert.Zero(t, output.Trend.TransactionCount)
	})

	t.Run("validates missing dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetSummaryInput{})

		var payErr *domainerror.PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, domainerror.ErrCodeMissingStartDate, payErr.Code)
	})
}

// windowedSourceRepository honors the fetch window the way the real
// repository's date-column filters do, inclusive on both ends.
type windowedSourceRepository struct {
	records []timedRecord
}

type timedRecord struct {
	at  time.Time
	raw valueobject.RawRecord
}

func (f *windowedSourceRepository) FetchCollection(_ context.Context, name string, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	if name != "customer_payments" {
		return valueobject.NamedCollection{Name: name}, nil
	}

	rows := make([]valueobject.RawRecord, 0)
	for _, r := range f.records {
		if window.Start != nil && r.at.Before(*window.Start) {
			continue
		}
		if window.End != nil && r.at.After(*window.End) {
			continue
		}
		rows = append(rows, r.raw)
	}

	return valueobject.NamedCollection{Name: "customer_payments", Records: rows}, nil
}

func TestGetSummaryUseCase_TrendEmptyPreviousPeriod(t *testing.T) {
	repo := &windowedSourceRepository{
		records: []timedRecord{
			{at: mustDate("2025-03-01"), raw: valueobject.RawRecord{"id": "1", "amount": 500.0, "status": "completed", "created_at": "2025-03-01"}},
			{at: mustDate("2025-03-15"), raw: valueobject.RawRecord{"id": "2", "amount": 300.0, "status": "completed", "created_at": "2025-03-15"}},
		},
	}

	uc := NewGetSummaryUseCase(repo, nil, testPriority(), aggregation.Options{}, time.Minute)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		StartDate: mustDate("2025-03-01"),
		EndDate:   mustDate("2025-03-31"),
		Compare:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Trend)

	assert.Equal(t, 2, output.Summary.Count)

	// The record dated exactly at the window start belongs to the current
	// period only; with nothing before it, every delta zero-guards.
	assert.Zero(t, output.Trend.Revenue)
	assert.Zero(t, output.Trend.TransactionCount)
	assert.Zero(t, output.Trend.SuccessRate)
	assert.Zero(t, output.Trend.AverageTicket)
}

func TestGetSummaryUseCase_NilCache(t *testing.T) {
	repo := &fakeSourceRepository{
		collections: map[string][]valueobject.RawRecord{},
		failing:     map[string]bool{},
	}

	uc := NewGetSummaryUseCase(repo, nil, testPriority(), aggregation.Options{}, time.Minute)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		StartDate: mustDate("2025-03-01"),
		EndDate:   mustDate("2025-03-31"),
	})
	require.NoError(t, err)
	assert.Zero(t, output.Summary.Count)
	assert.Zero(t, output.Summary.SuccessRate)
}
