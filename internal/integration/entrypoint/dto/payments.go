package dto

import (
	"time"

	"github.com/pos-payments/backend/internal/application/usecase/payments"
	"github.com/pos-payments/backend/internal/domain/entity"
)

// PaymentRecordResponse represents one merged payment record.
type PaymentRecordResponse struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
	Date         *string `json:"date"`
	Fees         float64 `json:"fees"`
	CustomerName string  `json:"customer_name,omitempty"`
	Reference    string  `json:"reference,omitempty"`
	Source       string  `json:"source"`
}

// PaymentsListResponse represents the response for the payments list API.
type PaymentsListResponse struct {
	Data       []PaymentRecordResponse `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

// PaginationResponse represents pagination information.
type PaginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func toPaymentRecordResponse(r entity.PaymentRecord) PaymentRecordResponse {
	var date *string
	if r.HasTimestamp {
		s := r.Timestamp.Format(time.RFC3339)
		date = &s
	}

	return PaymentRecordResponse{
		ID:           r.ID,
		Amount:       r.Amount.InexactFloat64(),
		Currency:     r.Currency,
		Method:       r.Method,
		Status:       string(r.Status),
		Date:         date,
		Fees:         r.Fees.InexactFloat64(),
		CustomerName: r.CustomerName,
		Reference:    r.Reference,
		Source:       r.SourceCollection,
	}
}

// ToPaymentsListResponse converts a ListPaymentsOutput to a PaymentsListResponse DTO.
func ToPaymentsListResponse(output *payments.ListPaymentsOutput) PaymentsListResponse {
	data := make([]PaymentRecordResponse, len(output.Records))
	for i, r := range output.Records {
		data[i] = toPaymentRecordResponse(r)
	}

	return PaymentsListResponse{
		Data: data,
		Pagination: PaginationResponse{
			Total:      output.Total,
			Page:       output.Page,
			Limit:      output.Limit,
			TotalPages: output.TotalPages,
		},
	}
}

// SummaryResponse represents the aggregated totals for a period.
type SummaryResponse struct {
	Count           int     `json:"count"`
	CompletedCount  int     `json:"completed_count"`
	PendingCount    int     `json:"pending_count"`
	FailedCount     int     `json:"failed_count"`
	TotalAmount     float64 `json:"total_amount"`
	CompletedAmount float64 `json:"completed_amount"`
	PendingAmount   float64 `json:"pending_amount"`
	FailedAmount    float64 `json:"failed_amount"`
	TotalFees       float64 `json:"total_fees"`
	NetAmount       float64 `json:"net_amount"`
	SuccessRate     float64 `json:"success_rate"`
	AverageTicket   float64 `json:"average_ticket"`
}

// TrendResponse represents percentage deltas versus the preceding period.
type TrendResponse struct {
	Revenue          float64 `json:"revenue"`
	TransactionCount float64 `json:"transaction_count"`
	SuccessRate      float64 `json:"success_rate"`
	AverageTicket    float64 `json:"average_ticket"`
}

// PaymentsSummaryResponse represents the response for the summary API.
type PaymentsSummaryResponse struct {
	Data  SummaryResponse `json:"data"`
	Trend *TrendResponse  `json:"trend,omitempty"`
}

func toSummaryResponse(s *payments.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Count:           s.Summary.Count,
		CompletedCount:  s.Summary.CompletedCount,
		PendingCount:    s.Summary.PendingCount,
		FailedCount:     s.Summary.FailedCount,
		TotalAmount:     s.Summary.TotalAmount.InexactFloat64(),
		CompletedAmount: s.Summary.CompletedAmount.InexactFloat64(),
		PendingAmount:   s.Summary.PendingAmount.InexactFloat64(),
		FailedAmount:    s.Summary.FailedAmount.InexactFloat64(),
		TotalFees:       s.Summary.TotalFees.InexactFloat64(),
		NetAmount:       s.Summary.NetAmount.InexactFloat64(),
		SuccessRate:     s.Summary.SuccessRate,
		AverageTicket:   s.Summary.AverageTicket,
	}
}

// ToPaymentsSummaryResponse converts a GetSummaryOutput to a PaymentsSummaryResponse DTO.
func ToPaymentsSummaryResponse(output *payments.GetSummaryOutput) PaymentsSummaryResponse {
	response := PaymentsSummaryResponse{
		Data: toSummaryResponse(output),
	}

	if output.Trend != nil {
		response.Trend = &TrendResponse{
			Revenue:          output.Trend.Revenue,
			TransactionCount: output.Trend.TransactionCount,
			SuccessRate:      output.Trend.SuccessRate,
			AverageTicket:    output.Trend.AverageTicket,
		}
	}

	return response
}

// MethodBucketResponse represents the summary for one payment method.
type MethodBucketResponse struct {
	Method        string  `json:"method"`
	Count         int     `json:"count"`
	TotalAmount   float64 `json:"total_amount"`
	TotalFees     float64 `json:"total_fees"`
	NetAmount     float64 `json:"net_amount"`
	SuccessRate   float64 `json:"success_rate"`
	AverageTicket float64 `json:"average_ticket"`
}

// MethodBreakdownResponse represents the response for the by-method API.
type MethodBreakdownResponse struct {
	Data []MethodBucketResponse `json:"data"`
}

// ToMethodBreakdownResponse converts a GetMethodBreakdownOutput to a MethodBreakdownResponse DTO.
func ToMethodBreakdownResponse(output *payments.GetMethodBreakdownOutput) MethodBreakdownResponse {
	data := make([]MethodBucketResponse, len(output.Buckets))
	for i, b := range output.Buckets {
		data[i] = MethodBucketResponse{
			Method:        b.Method,
			Count:         b.Summary.Count,
			TotalAmount:   b.Summary.TotalAmount.InexactFloat64(),
			TotalFees:     b.Summary.TotalFees.InexactFloat64(),
			NetAmount:     b.Summary.NetAmount.InexactFloat64(),
			SuccessRate:   b.Summary.SuccessRate,
			AverageTicket: b.Summary.AverageTicket,
		}
	}

	return MethodBreakdownResponse{Data: data}
}
