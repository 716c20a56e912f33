package dto

import (
	"github.com/pos-payments/backend/internal/application/usecase/export"
)

// ExportPaymentsRequest represents the request body for the export API.
type ExportPaymentsRequest struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Currency  string `json:"currency"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ExportPaymentsResponse represents the response for the export API.
type ExportPaymentsResponse struct {
	ExportID    string `json:"export_id"`
	DownloadURL string `json:"download_url"`
	RecordCount int    `json:"record_count"`
}

// ToExportPaymentsResponse converts an ExportPaymentsOutput to an
// ExportPaymentsResponse DTO.
func ToExportPaymentsResponse(output *export.ExportPaymentsOutput) ExportPaymentsResponse {
	return ExportPaymentsResponse{
		ExportID:    output.ExportID.String(),
		DownloadURL: output.DownloadURL,
		RecordCount: output.RecordCount,
	}
}
