package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pos-payments/backend/internal/application/usecase/export"
	domainerror "github.com/pos-payments/backend/internal/domain/error"
	"github.com/pos-payments/backend/internal/integration/entrypoint/dto"
)

// ExportController handles report export endpoints.
type ExportController struct {
	exportPaymentsUseCase *export.ExportPaymentsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportPaymentsUseCase *export.ExportPaymentsUseCase) *ExportController {
	return &ExportController{
		exportPaymentsUseCase: exportPaymentsUseCase,
	}
}

// ExportPayments handles POST /payments/export requests.
func (c *ExportController) ExportPayments(ctx *gin.Context) {
	var request dto.ExportPaymentsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := export.ExportPaymentsInput{
		Search:   request.Search,
		Status:   request.Status,
		Method:   request.Method,
		Currency: request.Currency,
	}

	if request.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = &parsed
	}

	if request.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		input.EndDate = &endOfDay
	}

	output, err := c.exportPaymentsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExportPaymentsResponse(output))
}

// handleExportError maps export errors to HTTP responses.
func (c *ExportController) handleExportError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExportError
	if errors.As(err, &expErr) {
		ctx.JSON(c.statusCodeForExportError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	handlePaymentError(ctx, err)
}

// statusCodeForExportError maps export error codes to HTTP status codes.
func (c *ExportController) statusCodeForExportError(code domainerror.ExportErrorCode) int {
	switch code {
	case domainerror.ErrCodeExportEmpty:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeExportUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
