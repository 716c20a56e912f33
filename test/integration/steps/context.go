// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/application/usecase/export"
	"github.com/pos-payments/backend/internal/application/usecase/orders"
	"github.com/pos-payments/backend/internal/application/usecase/payments"
	"github.com/pos-payments/backend/internal/domain/valueobject"
	"github.com/pos-payments/backend/internal/infra/server/router"
	"github.com/pos-payments/backend/internal/integration/adapters"
	"github.com/pos-payments/backend/internal/integration/entrypoint/controller"
	"github.com/pos-payments/backend/internal/integration/entrypoint/middleware"
	"github.com/pos-payments/backend/internal/integration/persistence"
	"github.com/pos-payments/backend/internal/integration/persistence/model"
	"github.com/pos-payments/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Data
	db *gorm.DB

	// Orders seeded by order number, so payment rows can reference them
	// without hardcoding UUIDs in feature files.
	ordersByNumber map[string]uuid.UUID
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// stubReportStorage keeps uploaded exports in memory and returns
// deterministic download URLs.
type stubReportStorage struct {
	objects map[string][]byte
}

func (s *stubReportStorage) Save(_ context.Context, fileName string, data []byte) (string, error) {
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	key := "exports/" + fileName
	s.objects[key] = data
	return key, nil
}

func (s *stubReportStorage) TemporaryURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://exports.test/" + key, nil
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db, err := mock.NewDb()
		if err != nil {
			return ctx, fmt.Errorf("failed to open test database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			db:             db,
			ordersByNumber: make(map[string]uuid.UUID),
		}

		opts := aggregation.Options{BaseCurrency: "USD", CanonicalizeMethods: true}
		sourcePriority := valueobject.DefaultSourcePriority()

		sourceRepo := persistence.NewPaymentSourceRepository(db)
		orderRepo := persistence.NewPurchaseOrderRepository(db)
		summaryCache := adapters.NewRedisSummaryCache(redisClient)

		listPaymentsUseCase := payments.NewListPaymentsUseCase(sourceRepo, sourcePriority, opts)
		getSummaryUseCase := payments.NewGetSummaryUseCase(
			sourceRepo, summaryCache, sourcePriority, opts, time.Minute)
		getMethodBreakdownUseCase := payments.NewGetMethodBreakdownUseCase(sourceRepo, sourcePriority, opts)
		listOrderPaymentStatesUseCase := orders.NewListOrderPaymentStatesUseCase(orderRepo)
		exportPaymentsUseCase := export.NewExportPaymentsUseCase(
			sourceRepo, &stubReportStorage{}, sourcePriority, opts)

		healthController := controller.NewHealthController(
			func() bool { return true },
			func() bool { return redisClient.Ping(context.Background()).Err() == nil },
		)
		paymentsController := controller.NewPaymentsController(
			listPaymentsUseCase, getSummaryUseCase, getMethodBreakdownUseCase)
		ordersController := controller.NewOrdersController(listOrderPaymentStatesUseCase)
		exportController := controller.NewExportController(exportPaymentsUseCase)

		exportRateLimiter := middleware.NewRateLimiterWithConfig(100, time.Minute)
		r := router.NewRouter(healthController, paymentsController, ordersController, exportController, exportRateLimiter)
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the customer payments table contains:$`, theCustomerPaymentsTableContains)
	ctx.Step(`^the payment transactions table contains:$`, thePaymentTransactionsTableContains)
	ctx.Step(`^the finance accounts table contains:$`, theFinanceAccountsTableContains)
	ctx.Step(`^the purchase orders table contains:$`, thePurchaseOrdersTableContains)
	ctx.Step(`^the purchase order payments table contains:$`, thePurchaseOrderPaymentsTableContains)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Seeding helpers

// tableRows converts a godog table with a header row into key/value maps.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func parseDay(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func theCustomerPaymentsTableContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		fees, err := parseAmount(row["fees"])
		if err != nil {
			return fmt.Errorf("invalid fees %q: %w", row["fees"], err)
		}
		createdAt, err := parseDay(row["created_at"])
		if err != nil {
			return fmt.Errorf("invalid created_at %q: %w", row["created_at"], err)
		}

		record := model.CustomerPaymentModel{
			ID:           row["id"],
			Amount:       amount,
			Currency:     row["currency"],
			Method:       row["method"],
			Status:       row["status"],
			Fees:         fees,
			CustomerName: row["customer_name"],
			Reference:    row["reference"],
			CreatedAt:    createdAt,
		}
		if err := tc.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed customer payment: %w", err)
		}
	}
	return nil
}

func thePaymentTransactionsTableContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		fee, err := parseAmount(row["transaction_fee"])
		if err != nil {
			return fmt.Errorf("invalid transaction_fee %q: %w", row["transaction_fee"], err)
		}
		date, err := parseDay(row["transaction_date"])
		if err != nil {
			return fmt.Errorf("invalid transaction_date %q: %w", row["transaction_date"], err)
		}

		record := model.PaymentTransactionModel{
			TransactionID:   row["transaction_id"],
			Amount:          amount,
			CurrencyCode:    row["currency_code"],
			Channel:         row["channel"],
			State:           row["state"],
			TransactionFee:  fee,
			PayerName:       row["payer_name"],
			ReceiptNumber:   row["receipt_number"],
			TransactionDate: date,
		}
		if err := tc.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed payment transaction: %w", err)
		}
	}
	return nil
}

func theFinanceAccountsTableContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row["amount_paid"])
		if err != nil {
			return fmt.Errorf("invalid amount_paid %q: %w", row["amount_paid"], err)
		}
		date, err := parseDay(row["date"])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row["date"], err)
		}

		record := model.FinanceAccountEntryModel{
			ID:            row["id"],
			AmountPaid:    amount,
			Currency:      row["currency"],
			PaymentMethod: row["payment_method"],
			Status:        row["status"],
			ReceiptNumber: row["receipt_number"],
			Date:          date,
		}
		if err := tc.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed finance account entry: %w", err)
		}
	}
	return nil
}

func thePurchaseOrdersTableContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		total, err := parseAmount(row["total_amount"])
		if err != nil {
			return fmt.Errorf("invalid total_amount %q: %w", row["total_amount"], err)
		}
		createdAt, err := parseDay(row["created_at"])
		if err != nil {
			return fmt.Errorf("invalid created_at %q: %w", row["created_at"], err)
		}

		orderID := uuid.New()
		record := model.PurchaseOrderModel{
			ID:           orderID,
			OrderNumber:  row["order_number"],
			SupplierName: row["supplier_name"],
			TotalAmount:  total,
			CreatedAt:    createdAt,
		}
		if err := tc.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed purchase order: %w", err)
		}
		tc.ordersByNumber[row["order_number"]] = orderID
	}
	return nil
}

func thePurchaseOrderPaymentsTableContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row["total_amount"])
		if err != nil {
			return fmt.Errorf("invalid total_amount %q: %w", row["total_amount"], err)
		}
		date, err := parseDay(row["payment_date"])
		if err != nil {
			return fmt.Errorf("invalid payment_date %q: %w", row["payment_date"], err)
		}

		orderID, ok := tc.ordersByNumber[row["order_number"]]
		if !ok {
			return fmt.Errorf("unknown order number %q, seed the purchase orders table first", row["order_number"])
		}

		record := model.PurchaseOrderPaymentModel{
			ID:              row["id"],
			PurchaseOrderID: orderID,
			TotalAmount:     amount,
			Currency:        row["currency"],
			PaymentMethod:   row["payment_method"],
			PaymentStatus:   row["payment_status"],
			ReferenceNumber: row["reference_number"],
			PaymentDate:     date,
		}
		if err := tc.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed purchase order payment: %w", err)
		}
	}
	return nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + endpoint
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dot-separated path in parsed response JSON.
func lookupField(data interface{}, path string) (interface{}, bool) {
	current := data
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := lookupField(data, field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := lookupField(data, field); !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	return nil
}
