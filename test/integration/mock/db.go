// Package mock provides in-process test doubles for integration tests.
package mock

import (
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"

	"github.com/pos-payments/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory database migrated with every source table.
// Each scenario gets its own database so seeds never leak between tests.
func NewDb() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.CustomerPaymentModel{},
		&model.PurchaseOrderPaymentModel{},
		&model.PaymentTransactionModel{},
		&model.FinanceAccountEntryModel{},
		&model.PurchaseOrderModel{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
