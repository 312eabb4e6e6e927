// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/usecase/advice"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// AdviceController handles advice feed endpoints.
type AdviceController struct {
	feedUseCase     *advice.FeedUseCase
	markReadUseCase *advice.MarkReadUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(
	feedUseCase *advice.FeedUseCase,
	markReadUseCase *advice.MarkReadUseCase,
) *AdviceController {
	return &AdviceController{
		feedUseCase:     feedUseCase,
		markReadUseCase: markReadUseCase,
	}
}

// Feed handles GET /advice requests.
func (c *AdviceController) Feed(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	unreadOnly := ctx.Query("unread_only") == "1" || ctx.Query("unread_only") == "true"

	output, err := c.feedUseCase.Execute(ctx.Request.Context(), advice.FeedInput{
		UserID:     userID,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load advice cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdviceFeedResponse(output))
}

// MarkRead handles POST /advice/:id/read requests.
func (c *AdviceController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid advice card ID format",
		})
		return
	}

	err = c.markReadUseCase.Execute(ctx.Request.Context(), advice.MarkReadInput{
		UserID: userID,
		CardID: cardID,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAdviceCardNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Advice card not found",
				Code:  string(domainerror.ErrCodeAdviceCardNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
