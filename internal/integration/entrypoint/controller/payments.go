package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pos-payments/backend/internal/application/usecase/payments"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
	"github.com/pos-payments/backend/internal/integration/entrypoint/dto"
)

// PaymentsController handles merged payment endpoints.
type PaymentsController struct {
	listPaymentsUseCase       *payments.ListPaymentsUseCase
	getSummaryUseCase         *payments.GetSummaryUseCase
	getMethodBreakdownUseCase *payments.GetMethodBreakdownUseCase
}

// NewPaymentsController creates a new payments controller instance.
func NewPaymentsController(
	listPaymentsUseCase *payments.ListPaymentsUseCase,
	getSummaryUseCase *payments.GetSummaryUseCase,
	getMethodBreakdownUseCase *payments.GetMethodBreakdownUseCase,
) *PaymentsController {
	return &PaymentsController{
		listPaymentsUseCase:       listPaymentsUseCase,
		getSummaryUseCase:         getSummaryUseCase,
		getMethodBreakdownUseCase: getMethodBreakdownUseCase,
	}
}

// List handles GET /payments requests.
func (c *PaymentsController) List(ctx *gin.Context) {
	startDate, endDate, ok := parseOptionalWindow(ctx)
	if !ok {
		return
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	input := payments.ListPaymentsInput{
		Search:    ctx.Query("search"),
		Status:    ctx.Query("status"),
		Method:    ctx.Query("method"),
		Currency:  ctx.Query("currency"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
		Limit:     limit,
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentsListResponse(output))
}

// GetSummary handles GET /payments/summary requests.
func (c *PaymentsController) GetSummary(ctx *gin.Context) {
	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return
	}

	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}
	// Include the whole end day, matching the list window
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	compare, _ := strconv.ParseBool(ctx.DefaultQuery("compare", "false"))

	input := payments.GetSummaryInput{
		StartDate: startDate,
		EndDate:   endDate,
		Compare:   compare,
		Status:    ctx.Query("status"),
		Method:    ctx.Query("method"),
		Currency:  ctx.Query("currency"),
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentsSummaryResponse(output))
}

// GetMethodBreakdown handles GET /payments/by-method requests.
func (c *PaymentsController) GetMethodBreakdown(ctx *gin.Context) {
	startDate, endDate, ok := parseOptionalWindow(ctx)
	if !ok {
		return
	}

	input := payments.GetMethodBreakdownInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getMethodBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMethodBreakdownResponse(output))
}

// parseOptionalWindow parses optional start_date and end_date query
// parameters, writing the error response itself on bad input.
func parseOptionalWindow(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var startDate, endDate *time.Time

	if s := ctx.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return nil, nil, false
		}
		startDate = &parsed
	}

	if s := ctx.Query("end_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return nil, nil, false
		}
		// Include the whole end day
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		endDate = &endOfDay
	}

	return startDate, endDate, true
}

// handlePaymentError maps payment errors to HTTP responses.
func handlePaymentError(ctx *gin.Context, err error) {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		ctx.JSON(statusCodeForPaymentError(payErr.Code), dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForPaymentError maps payment error codes to HTTP status codes.
func statusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidOrderStatus:
		return http.StatusBadRequest
	case domainerror.ErrCodeSourceFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
