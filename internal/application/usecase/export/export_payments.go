// Package export contains report export use cases.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/domain/entity"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

const (
	sheetName   = "Payments"
	downloadTTL = 15 * time.Minute
)

// paymentColumn maps one workbook column to a record field.
type paymentColumn struct {
	Header string
	Value  func(r entity.PaymentRecord) any
}

var paymentColumns = []paymentColumn{
	{Header: "ID", Value: func(r entity.PaymentRecord) any { return r.ID }},
	{Header: "Date", Value: func(r entity.PaymentRecord) any {
		if !r.HasTimestamp {
			return ""
		}
		return r.Timestamp.Format("2006-01-02 15:04:05")
	}},
	{Header: "Customer", Value: func(r entity.PaymentRecord) any { return r.CustomerName }},
	{Header: "Reference", Value: func(r entity.PaymentRecord) any { return r.Reference }},
	{Header: "Method", Value: func(r entity.PaymentRecord) any { return r.Method }},
	{Header: "Status", Value: func(r entity.PaymentRecord) any { return string(r.Status) }},
	{Header: "Currency", Value: func(r entity.PaymentRecord) any { return r.Currency }},
	{Header: "Amount", Value: func(r entity.PaymentRecord) any { return r.Amount.InexactFloat64() }},
	{Header: "Fees", Value: func(r entity.PaymentRecord) any { return r.Fees.InexactFloat64() }},
	{Header: "Source", Value: func(r entity.PaymentRecord) any { return r.SourceCollection }},
}

// ExportPaymentsInput represents the input for exporting merged payments.
type ExportPaymentsInput struct {
	Search    string
	Status    string
	Method    string
	Currency  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExportPaymentsOutput represents the output of exporting merged payments.
type ExportPaymentsOutput struct {
	ExportID    uuid.UUID
	ObjectKey   string
	DownloadURL string
	RecordCount int
}

// ExportPaymentsUseCase renders the merged, filtered record set to an XLSX
// workbook and uploads it to object storage.
type ExportPaymentsUseCase struct {
	sourceRepo     adapter.PaymentSourceRepository
	storage        adapter.ReportStorage
	sourcePriority []string
	opts           aggregation.Options
}

// NewExportPaymentsUseCase creates a new ExportPaymentsUseCase instance.
func NewExportPaymentsUseCase(
	sourceRepo adapter.PaymentSourceRepository,
	storage adapter.ReportStorage,
	sourcePriority []string,
	opts aggregation.Options,
) *ExportPaymentsUseCase {
	return &ExportPaymentsUseCase{
		sourceRepo:     sourceRepo,
		storage:        storage,
		sourcePriority: sourcePriority,
		opts:           opts,
	}
}

// Execute generates and stores the export, returning a time-limited
// download URL.
func (uc *ExportPaymentsUseCase) Execute(ctx context.Context, input ExportPaymentsInput) (*ExportPaymentsOutput, error) {
	window := adapter.SourceWindow{Start: input.StartDate, End: input.EndDate}
	sources := uc.fetchAll(ctx, window)

	merged := aggregation.MergeAndDeduplicate(sources, uc.opts)
	records := aggregation.FilterRecords(merged, aggregation.FilterCriteria{
		Query:    input.Search,
		Status:   input.Status,
		Method:   input.Method,
		Currency: input.Currency,
	})

	if len(records) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportEmpty,
			"no records match the export criteria",
			domainerror.ErrExportEmpty,
		)
	}

	data, err := buildWorkbook(records)
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportGenerationFailed,
			"failed to generate export workbook",
			err,
		)
	}

	exportID := uuid.New()
	fileName := fmt.Sprintf("payments_%s_%s.xlsx",
		time.Now().UTC().Format("20060102_150405"), exportID.String()[:8])

	key, err := uc.storage.Save(ctx, fileName, data)
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportUploadFailed,
			"failed to upload export file",
			err,
		)
	}

	url, err := uc.storage.TemporaryURL(ctx, key, downloadTTL)
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportUploadFailed,
			"failed to presign export file",
			err,
		)
	}

	return &ExportPaymentsOutput{
		ExportID:    exportID,
		ObjectKey:   key,
		DownloadURL: url,
		RecordCount: len(records),
	}, nil
}

// fetchAll mirrors the aggregation fetch policy: failed sources become
// empty collections so the export covers whatever is reachable.
func (uc *ExportPaymentsUseCase) fetchAll(ctx context.Context, window adapter.SourceWindow) []valueobject.NamedCollection {
	collections := make([]valueobject.NamedCollection, len(uc.sourcePriority))
	for i, name := range uc.sourcePriority {
		collection, err := uc.sourceRepo.FetchCollection(ctx, name, window)
		if err != nil {
			slog.Warn("Source collection unavailable for export, continuing without it",
				"source", name,
				"error", err,
			)
			collections[i] = valueobject.NamedCollection{Name: name}
			continue
		}
		collections[i] = collection
	}
	return collections
}

func buildWorkbook(records []entity.PaymentRecord) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i, col := range paymentColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, err
		}
	}

	for rowIdx, record := range records {
		for colIdx, col := range paymentColumns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, col.Value(record)); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
