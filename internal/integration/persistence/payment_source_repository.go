// Package persistence implements repository interfaces using GORM.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/domain/valueobject"
	"github.com/pos-payments/backend/internal/integration/persistence/model"
)

// PaymentSourceRepository fetches raw payment rows from the legacy source
// tables. Each table keeps its own column names and date column; rows are
// surfaced as RawRecord maps for the aggregation engine to normalize.
type PaymentSourceRepository struct {
	db *gorm.DB
}

// NewPaymentSourceRepository creates a new PaymentSourceRepository.
func NewPaymentSourceRepository(db *gorm.DB) adapter.PaymentSourceRepository {
	return &PaymentSourceRepository{db: db}
}

// FetchCollection retrieves all rows of the named source table within the
// given window, newest first by the table's own date column.
func (r *PaymentSourceRepository) FetchCollection(ctx context.Context, name string, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	switch name {
	case valueobject.SourceCustomerPayments:
		return r.fetchCustomerPayments(ctx, window)
	case valueobject.SourcePurchaseOrderPayments:
		return r.fetchPurchaseOrderPayments(ctx, window)
	case valueobject.SourcePaymentTransactions:
		return r.fetchPaymentTransactions(ctx, window)
	case valueobject.SourceFinanceAccounts:
		return r.fetchFinanceAccounts(ctx, window)
	default:
		return valueobject.NamedCollection{}, fmt.Errorf("unknown payment source: %s", name)
	}
}

func (r *PaymentSourceRepository) fetchCustomerPayments(ctx context.Context, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	var rows []model.CustomerPaymentModel
	query := windowed(r.db.WithContext(ctx), "created_at", window)
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return valueobject.NamedCollection{}, fmt.Errorf("failed to fetch customer payments: %w", err)
	}

	records := make([]valueobject.RawRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRawRecord())
	}
	return valueobject.NamedCollection{Name: valueobject.SourceCustomerPayments, Records: records}, nil
}

func (r *PaymentSourceRepository) fetchPurchaseOrderPayments(ctx context.Context, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	var rows []model.PurchaseOrderPaymentModel
	query := windowed(r.db.WithContext(ctx), "payment_date", window)
	if err := query.Order("payment_date DESC").Find(&rows).Error; err != nil {
		return valueobject.NamedCollection{}, fmt.Errorf("failed to fetch purchase order payments: %w", err)
	}

	records := make([]valueobject.RawRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRawRecord())
	}
	return valueobject.NamedCollection{Name: valueobject.SourcePurchaseOrderPayments, Records: records}, nil
}

func (r *PaymentSourceRepository) fetchPaymentTransactions(ctx context.Context, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	var rows []model.PaymentTransactionModel
	query := windowed(r.db.WithContext(ctx), "transaction_date", window)
	if err := query.Order("transaction_date DESC").Find(&rows).Error; err != nil {
		return valueobject.NamedCollection{}, fmt.Errorf("failed to fetch payment transactions: %w", err)
	}

	records := make([]valueobject.RawRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRawRecord())
	}
	return valueobject.NamedCollection{Name: valueobject.SourcePaymentTransactions, Records: records}, nil
}

func (r *PaymentSourceRepository) fetchFinanceAccounts(ctx context.Context, window adapter.SourceWindow) (valueobject.NamedCollection, error) {
	var rows []model.FinanceAccountEntryModel
	query := windowed(r.db.WithContext(ctx), "date", window)
	if err := query.Order("date DESC").Find(&rows).Error; err != nil {
		return valueobject.NamedCollection{}, fmt.Errorf("failed to fetch finance account entries: %w", err)
	}

	records := make([]valueobject.RawRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRawRecord())
	}
	return valueobject.NamedCollection{Name: valueobject.SourceFinanceAccounts, Records: records}, nil
}

// windowed applies the optional date window on the table's date column.
func windowed(query *gorm.DB, dateColumn string, window adapter.SourceWindow) *gorm.DB {
	if window.Start != nil {
		query = query.Where(dateColumn+" >= ?", *window.Start)
	}
	if window.End != nil {
		query = query.Where(dateColumn+" <= ?", *window.End)
	}
	return query
}
