package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/domain/valueobject"
	"github.com/pos-payments/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.CustomerPaymentModel{},
		&model.PurchaseOrderPaymentModel{},
		&model.PaymentTransactionModel{},
		&model.FinanceAccountEntryModel{},
		&model.PurchaseOrderModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestPaymentSourceRepository_FetchCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("should fetch customer payments newest first", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentSourceRepository(db)

		older := model.CustomerPaymentModel{
			ID:           "cp-1",
			Amount:       decimal.NewFromInt(100),
			Currency:     "USD",
			Method:       "cash",
			Status:       "completed",
			CustomerName: "Alice",
			CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}
		newer := model.CustomerPaymentModel{
			ID:        "cp-2",
			Amount:    decimal.NewFromInt(250),
			Currency:  "USD",
			Method:    "card",
			Status:    "pending",
			CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		}
		if err := db.Create(&older).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if err := db.Create(&newer).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		collection, err := repo.FetchCollection(ctx, valueobject.SourceCustomerPayments, adapter.SourceWindow{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if collection.Name != valueobject.SourceCustomerPayments {
			t.Errorf("expected collection name %q, got %q", valueobject.SourceCustomerPayments, collection.Name)
		}
		if len(collection.Records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(collection.Records))
		}
		if collection.Records[0]["id"] != "cp-2" {
			t.Errorf("expected newest record first, got id %v", collection.Records[0]["id"])
		}
		if collection.Records[1]["customer_name"] != "Alice" {
			t.Errorf("expected customer_name Alice, got %v", collection.Records[1]["customer_name"])
		}
	})

	t.Run("should filter by window on the table's own date column", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentSourceRepository(db)

		rows := []model.PaymentTransactionModel{
			{
				TransactionID:   "tx-before",
				Amount:          decimal.NewFromInt(10),
				TransactionDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				TransactionID:   "tx-inside",
				Amount:          decimal.NewFromInt(20),
				Channel:         "mobile money",
				State:           "completed",
				TransactionDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				TransactionID:   "tx-after",
				Amount:          decimal.NewFromInt(30),
				TransactionDate: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
			},
		}
		if err := db.Create(&rows).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		window := adapter.SourceWindow{
			Start: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
			End:   timePtr(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)),
		}
		collection, err := repo.FetchCollection(ctx, valueobject.SourcePaymentTransactions, window)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(collection.Records) != 1 {
			t.Fatalf("expected 1 record inside window, got %d", len(collection.Records))
		}
		if collection.Records[0]["transaction_id"] != "tx-inside" {
			t.Errorf("expected tx-inside, got %v", collection.Records[0]["transaction_id"])
		}
		if collection.Records[0]["channel"] != "mobile money" {
			t.Errorf("expected raw channel field, got %v", collection.Records[0]["channel"])
		}
	})

	t.Run("should surface finance account entries with ledger field names", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentSourceRepository(db)

		entry := model.FinanceAccountEntryModel{
			ID:            "fa-1",
			AmountPaid:    decimal.NewFromInt(75),
			Currency:      "USD",
			PaymentMethod: "bank_transfer",
			Status:        "completed",
			ReceiptNumber: "RCPT-9",
			Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		collection, err := repo.FetchCollection(ctx, valueobject.SourceFinanceAccounts, adapter.SourceWindow{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(collection.Records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(collection.Records))
		}
		record := collection.Records[0]
		if _, ok := record["amount_paid"]; !ok {
			t.Error("expected amount_paid key on finance account record")
		}
		if record["receipt_number"] != "RCPT-9" {
			t.Errorf("expected receipt_number RCPT-9, got %v", record["receipt_number"])
		}
	})

	t.Run("should return empty collection for table with no rows", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentSourceRepository(db)

		collection, err := repo.FetchCollection(ctx, valueobject.SourcePurchaseOrderPayments, adapter.SourceWindow{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(collection.Records) != 0 {
			t.Errorf("expected empty collection, got %d records", len(collection.Records))
		}
		if collection.Records == nil {
			t.Error("expected non-nil records slice")
		}
	})

	t.Run("should fail for unknown source name", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentSourceRepository(db)

		_, err := repo.FetchCollection(ctx, "invoices", adapter.SourceWindow{})
		if err == nil {
			t.Fatal("expected error for unknown source name")
		}
	})
}

func TestPurchaseOrderRepository_FindAllWithPaidTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("should sum payments per order", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPurchaseOrderRepository(db)

		orderID := uuid.New()
		order := model.PurchaseOrderModel{
			ID:           orderID,
			OrderNumber:  "PO-1001",
			SupplierName: "Acme Supplies",
			TotalAmount:  decimal.NewFromInt(1000),
			CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("failed to seed order: %v", err)
		}

		payments := []model.PurchaseOrderPaymentModel{
			{
				ID:              "pop-1",
				PurchaseOrderID: orderID,
				TotalAmount:     decimal.NewFromInt(300),
				PaymentStatus:   "completed",
				PaymentDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:              "pop-2",
				PurchaseOrderID: orderID,
				TotalAmount:     decimal.NewFromInt(100),
				PaymentStatus:   "completed",
				PaymentDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			},
		}
		if err := db.Create(&payments).Error; err != nil {
			t.Fatalf("failed to seed payments: %v", err)
		}

		orders, err := repo.FindAllWithPaidTotals(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders))
		}
		if !orders[0].TotalPaid.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected total paid 400, got %s", orders[0].TotalPaid)
		}
		if orders[0].OrderNumber != "PO-1001" {
			t.Errorf("expected order number PO-1001, got %s", orders[0].OrderNumber)
		}
	})

	t.Run("should report zero paid for order with no payments", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPurchaseOrderRepository(db)

		order := model.PurchaseOrderModel{
			ID:           uuid.New(),
			OrderNumber:  "PO-2001",
			SupplierName: "Fresh Farms",
			TotalAmount:  decimal.NewFromInt(500),
			CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("failed to seed order: %v", err)
		}

		orders, err := repo.FindAllWithPaidTotals(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders))
		}
		if !orders[0].TotalPaid.IsZero() {
			t.Errorf("expected zero total paid, got %s", orders[0].TotalPaid)
		}
	})

	t.Run("should return orders newest first", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPurchaseOrderRepository(db)

		orders := []model.PurchaseOrderModel{
			{
				ID:           uuid.New(),
				OrderNumber:  "PO-OLD",
				SupplierName: "Acme Supplies",
				TotalAmount:  decimal.NewFromInt(100),
				CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:           uuid.New(),
				OrderNumber:  "PO-NEW",
				SupplierName: "Acme Supplies",
				TotalAmount:  decimal.NewFromInt(200),
				CreatedAt:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		}
		if err := db.Create(&orders).Error; err != nil {
			t.Fatalf("failed to seed orders: %v", err)
		}

		found, err := repo.FindAllWithPaidTotals(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(found) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(found))
		}
		if found[0].OrderNumber != "PO-NEW" {
			t.Errorf("expected newest order first, got %s", found[0].OrderNumber)
		}
	})
}
