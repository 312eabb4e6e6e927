// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-coach/backend/internal/application/usecase/coach"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// CoachController handles coaching query endpoints.
type CoachController struct {
	lowIncomeUseCase       *coach.LowIncomeCheckUseCase
	expenseAnalysisUseCase *coach.ExpenseAnalysisUseCase
	heatmapUseCase         *coach.WeeklyHeatmapUseCase
	dailyBreakdownUseCase  *coach.DailyBreakdownUseCase
	bufferUseCase          *coach.EmergencyBufferUseCase
}

// NewCoachController creates a new coach controller instance.
func NewCoachController(
	lowIncomeUseCase *coach.LowIncomeCheckUseCase,
	expenseAnalysisUseCase *coach.ExpenseAnalysisUseCase,
	heatmapUseCase *coach.WeeklyHeatmapUseCase,
	dailyBreakdownUseCase *coach.DailyBreakdownUseCase,
	bufferUseCase *coach.EmergencyBufferUseCase,
) *CoachController {
	return &CoachController{
		lowIncomeUseCase:       lowIncomeUseCase,
		expenseAnalysisUseCase: expenseAnalysisUseCase,
		heatmapUseCase:         heatmapUseCase,
		dailyBreakdownUseCase:  dailyBreakdownUseCase,
		bufferUseCase:          bufferUseCase,
	}
}

// LowIncomeCheck handles GET /coach/low-income-check requests.
func (c *CoachController) LowIncomeCheck(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.lowIncomeUseCase.Execute(ctx.Request.Context(), coach.LowIncomeCheckInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCoachError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLowIncomeCheckResponse(output))
}

// ExpenseAnalysis handles GET /coach/expense-analysis requests.
func (c *CoachController) ExpenseAnalysis(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	days, ok := c.parseIntQuery(ctx, "days", coach.ExpenseWindowDays, string(domainerror.ErrCodeInvalidDays))
	if !ok {
		return
	}

	output, err := c.expenseAnalysisUseCase.Execute(ctx.Request.Context(), coach.ExpenseAnalysisInput{
		UserID: userID,
		Days:   days,
	})
	if err != nil {
		c.handleCoachError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseAnalysisResponse(output))
}

// Heatmap handles GET /coach/heatmap requests.
func (c *CoachController) Heatmap(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	weeks, ok := c.parseIntQuery(ctx, "weeks", coach.DefaultHeatmapWeeks, string(domainerror.ErrCodeInvalidWeeks))
	if !ok {
		return
	}

	output, err := c.heatmapUseCase.Execute(ctx.Request.Context(), coach.WeeklyHeatmapInput{
		UserID: userID,
		Weeks:  weeks,
	})
	if err != nil {
		c.handleCoachError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyHeatmapResponse(output))
}

// DailyBreakdown handles GET /coach/daily-breakdown requests.
func (c *CoachController) DailyBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.dailyBreakdownUseCase.Execute(ctx.Request.Context(), coach.DailyBreakdownInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCoachError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyBreakdownResponse(output))
}

// EmergencyBuffer handles GET /coach/buffer requests.
func (c *CoachController) EmergencyBuffer(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	months, ok := c.parseIntQuery(ctx, "months", coach.DefaultBufferMonths, string(domainerror.ErrCodeInvalidMonths))
	if !ok {
		return
	}

	output, err := c.bufferUseCase.Execute(ctx.Request.Context(), coach.EmergencyBufferInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleCoachError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmergencyBufferResponse(output))
}

// parseIntQuery reads an optional positive integer query parameter, writing a
// 400 response and reporting false when the value does not parse.
func (c *CoachController) parseIntQuery(ctx *gin.Context, name string, defaultValue int, code string) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must be an integer",
			Code:  code,
		})
		return 0, false
	}
	return value, true
}

// handleCoachError handles coach errors and returns appropriate HTTP responses.
func (c *CoachController) handleCoachError(ctx *gin.Context, err error) {
	var coachErr *domainerror.CoachError
	if errors.As(err, &coachErr) {
		statusCode := c.getStatusCodeForCoachError(coachErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: coachErr.Message,
			Code:  string(coachErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeCoachInternalError),
	})
}

// getStatusCodeForCoachError maps coach error codes to HTTP status codes.
func (c *CoachController) getStatusCodeForCoachError(code domainerror.CoachErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDays,
		domainerror.ErrCodeInvalidWeeks,
		domainerror.ErrCodeInvalidMonths,
		domainerror.ErrCodeInvalidLowIncomeThreshold,
		domainerror.ErrCodeInvalidExpenseRatio:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
