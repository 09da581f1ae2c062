package handlers

import (
	"errors"
	"net/http"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD and the monthly category summary
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense records a new expense for the authenticated user
//
// Method: POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	expense, err := h.expenseService.CreateExpense(userID, &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidExpenseAmount) {
			return SendError(c, apierrors.ExpenseInvalidAmount)
		}
		if errors.Is(err, models.ErrCategoryRequired) || errors.Is(err, models.ErrInvalidRecurrence) {
			return SendError(c, apierrors.ValidationGeneral,
				apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: toExpenseResponse(expense),
	})
}

// ListExpenses returns the authenticated user's expenses, newest first
//
// Method: GET /api/v1/expenses
// Query parameters:
//   - offset: number of records to skip (default 0)
//   - limit: page size (default 50, max 100)
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	expenses, total, err := h.expenseService.GetUserExpenses(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListExpensesResponse{
			Expenses: responses,
			Total:    total,
			Offset:   offset,
			Limit:    limit,
		},
	})
}

// ListRecurringExpenses returns the user's recurring expenses, the series
// the price increase insights come from
//
// Method: GET /api/v1/expenses/recurring
func (h *ExpenseHandler) ListRecurringExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenses, err := h.expenseService.GetRecurringExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// GetExpense returns one expense by ID
//
// Method: GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	expense, err := h.expenseService.GetExpenseByID(expenseID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toExpenseResponse(expense),
	})
}

// UpdateExpense applies a partial update to an expense
//
// Method: PATCH /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, userID, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		if errors.Is(err, models.ErrInvalidExpenseAmount) {
			return SendError(c, apierrors.ExpenseInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toExpenseResponse(expense),
	})
}

// DeleteExpense removes an expense
//
// Method: DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(expenseID, userID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMonthlySummary returns per-category spend totals for a month, with
// budget limits attached where configured
//
// Method: GET /api/v1/expenses/summary
// Query parameters:
//   - year: calendar year (default current)
//   - month: 1-12 (default current)
func (h *ExpenseHandler) GetMonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	now := time.Now()
	year := getIntParam(c, "year", now.Year())
	month := getIntParam(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		return SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithDetails("month must be between 1 and 12"))
	}

	summary, err := h.expenseService.GetMonthlyCategorySummary(userID, year, time.Month(month))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
		Meta: map[string]int{"year": year, "month": month},
	})
}

func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	resp := dto.ExpenseResponse{
		ID:          expense.ID,
		Amount:      expense.Amount.String(),
		Currency:    expense.Currency,
		Category:    expense.Category,
		Description: expense.Description,
		Recurrence:  expense.Recurrence,
		ReceiptURL:  expense.ReceiptURL,
		CreatedAt:   expense.CreatedAt,
	}

	if expense.ConvertedAmount != nil {
		converted := expense.ConvertedAmount.String()
		resp.ConvertedAmount = &converted
	}

	return resp
}
