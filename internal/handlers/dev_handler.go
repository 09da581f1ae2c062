package handlers

import (
	"net/http"

	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	generator   services.ExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(expenseRepo repositories.ExpenseRepositoryInterface) *DevHandler {
	return &DevHandler{
		expenseRepo: expenseRepo,
		generator:   services.NewExpenseGenerator(),
	}
}

// GenerateTestData seeds realistic expense data for the authenticated user,
// including a recurring series with a price increase so a subsequent
// insight refresh has something to find
//
// Method: POST /api/v1/dev/generate-expenses
// Environment: Development only
//
// Query parameters:
//   - count: number of one-off expenses to generate (default: 50, max: 500)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	count := getIntParam(c, "count", 50)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	expenses := h.generator.GenerateExpenses(userID, count)
	expenses = append(expenses, h.generator.GenerateRecurringSeries(userID, "Streaming subscription", "Entertainment", 4)...)

	if err := h.expenseRepo.CreateBatch(expenses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed expenses")
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "test data generated",
		Meta:    map[string]int{"expenses_created": len(expenses)},
	})
}
