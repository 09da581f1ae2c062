package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles per-category monthly budget management
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// SetBudget creates or replaces the monthly limit for a category
//
// Method: PUT /api/v1/budgets
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	budget, err := h.budgetService.SetBudget(userID, req.Category, req.MonthlyLimit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBudgetLimit) {
			return SendError(c, apierrors.BudgetInvalidLimit)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toBudgetResponse(budget),
	})
}

// ListBudgets returns all budgets for the authenticated user
//
// Method: GET /api/v1/budgets
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, toBudgetResponse(&budgets[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// DeleteBudget removes a budget
//
// Method: DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID := c.Param("id")
	if budgetID == "" {
		return SendError(c, apierrors.BudgetNotFound)
	}

	if err := h.budgetService.DeleteBudget(budgetID, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toBudgetResponse(budget *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:           budget.ID,
		Category:     budget.Category,
		MonthlyLimit: budget.MonthlyLimit.String(),
		UpdatedAt:    budget.UpdatedAt,
	}
}
