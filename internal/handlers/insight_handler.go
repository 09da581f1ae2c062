package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InsightHandler exposes the insight collection and the refresh trigger
type InsightHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// ListInsights returns all insights for the authenticated user
//
// Method: GET /api/v1/insights
// Query parameters:
//   - unread: when "true", only unread insights are returned
func (h *InsightHandler) ListInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var insights []models.Insight
	if c.QueryParam("unread") == "true" {
		insights, err = h.insightService.GetUnreadInsights(userID)
	} else {
		insights, err = h.insightService.GetInsights(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toInsightResponses(insights),
	})
}

// RefreshInsights runs one insight engine cycle for the authenticated user
// and returns the (possibly extended) insight collection
//
// Method: POST /api/v1/insights/refresh
func (h *InsightHandler) RefreshInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insights, generated, err := h.insightService.RefreshInsights(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RefreshInsightsResponse{
			Generated: generated,
			Insights:  toInsightResponses(insights),
		},
	})
}

// MarkInsightRead marks one insight as read
//
// Method: POST /api/v1/insights/:id/read
func (h *InsightHandler) MarkInsightRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.InsightInvalidID)
	}

	if err := h.insightService.MarkInsightRead(insightID, userID); err != nil {
		if errors.Is(err, repositories.ErrInsightNotFound) {
			return SendError(c, apierrors.InsightNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "insight marked as read",
	})
}

// DeleteInsight removes one insight. Deleting re-enables future generation
// for the underlying condition.
//
// Method: DELETE /api/v1/insights/:id
func (h *InsightHandler) DeleteInsight(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.InsightInvalidID)
	}

	if err := h.insightService.DeleteInsight(insightID, userID); err != nil {
		if errors.Is(err, repositories.ErrInsightNotFound) {
			return SendError(c, apierrors.InsightNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toInsightResponses(insights []models.Insight) []dto.InsightResponse {
	responses := make([]dto.InsightResponse, 0, len(insights))
	for i := range insights {
		ins := &insights[i]
		responses = append(responses, dto.InsightResponse{
			ID:               ins.ID,
			Kind:             ins.Kind,
			Message:          ins.Message,
			RelatedCategory:  ins.RelatedCategory,
			RelatedExpenseID: ins.RelatedExpenseID,
			IsRead:           ins.IsRead,
			CreatedAt:        ins.CreatedAt,
		})
	}
	return responses
}
