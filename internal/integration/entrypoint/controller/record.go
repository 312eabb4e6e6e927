// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/record"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles ledger record endpoints.
type RecordController struct {
	createIncomeUseCase *record.CreateIncomeUseCase
	createCashUseCase   *record.CreateCashUseCase
	listUseCase         *record.ListRecordsUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	createIncomeUseCase *record.CreateIncomeUseCase,
	createCashUseCase *record.CreateCashUseCase,
	listUseCase *record.ListRecordsUseCase,
) *RecordController {
	return &RecordController{
		createIncomeUseCase: createIncomeUseCase,
		createCashUseCase:   createCashUseCase,
		listUseCase:         listUseCase,
	}
}

// CreateIncome handles POST /records/income requests.
func (c *RecordController) CreateIncome(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := c.parseDate(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.createIncomeUseCase.Execute(ctx.Request.Context(), record.CreateIncomeInput{
		UserID:   userID,
		Date:     date,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: entity.IncomeCategory(req.Category),
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeRecordResponse(output))
}

// CreateCash handles POST /records/cash requests.
func (c *RecordController) CreateCash(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCashRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := c.parseDate(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.createCashUseCase.Execute(ctx.Request.Context(), record.CreateCashInput{
		UserID:      userID,
		Date:        date,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		IsIncome:    req.IsIncome,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashRecordResponse(output))
}

// ListIncomes handles GET /records/income requests.
func (c *RecordController) ListIncomes(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.ExecuteIncomes(ctx.Request.Context(), record.ListRecordsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list income records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output))
}

// ListCash handles GET /records/cash requests.
func (c *RecordController) ListCash(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.ExecuteCash(ctx.Request.Context(), record.ListRecordsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list cash records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashListResponse(output))
}

// parseDate parses a YYYY-MM-DD date, writing a 400 response on failure.
func (c *RecordController) parseDate(ctx *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse(entity.DateKeyLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDate),
		})
		return time.Time{}, false
	}
	return date, true
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := http.StatusInternalServerError
		switch recordErr.Code {
		case domainerror.ErrCodeNegativeAmount,
			domainerror.ErrCodeMissingDate,
			domainerror.ErrCodeInvalidIncomeCategory:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeRecordInternalError),
	})
}
