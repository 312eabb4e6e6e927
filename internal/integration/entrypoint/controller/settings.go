// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/settings"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles coaching settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /coach/settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}

// Update handles PUT /coach/settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		UserID:               userID,
		NotificationsEnabled: req.NotificationsEnabled,
	}
	if req.LowIncomeThreshold != nil {
		threshold := decimal.NewFromFloat(*req.LowIncomeThreshold)
		input.LowIncomeThreshold = &threshold
	}
	if req.HighExpenseRatio != nil {
		ratio := decimal.NewFromFloat(*req.HighExpenseRatio)
		input.HighExpenseRatio = &ratio
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var coachErr *domainerror.CoachError
	if errors.As(err, &coachErr) {
		statusCode := http.StatusInternalServerError
		switch coachErr.Code {
		case domainerror.ErrCodeInvalidLowIncomeThreshold, domainerror.ErrCodeInvalidExpenseRatio:
			statusCode = http.StatusBadRequest
		}
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
