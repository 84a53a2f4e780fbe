package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ListCategories returns the categories of the current data source
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Category}
// @Router /categories [get]
func (h *LedgerHandler) ListCategories(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		categories, err := ledger.ListCategories(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, categories, len(categories))
	})
}

// CreateCategory creates an income or expense category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category details"
// @Success 201 {object} SuccessResponse{data=models.Category}
// @Router /categories [post]
func (h *LedgerHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		created, err := ledger.CreateCategory(c.Request().Context(), req.ToModel())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusCreated, created, "Category created successfully")
	})
}

// UpdateCategory edits a category. The type cannot change while transactions
// of the old type reference it.
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param request body dto.CategoryRequest true "Category details"
// @Success 200 {object} SuccessResponse{data=models.Category}
// @Failure 422 {object} errors.ErrorResponse "LEDGER_005 - Transactions of the old type reference the category"
// @Router /categories/{id} [put]
func (h *LedgerHandler) UpdateCategory(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req dto.CategoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	category := req.ToModel()
	category.ID = id

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		updated, err := ledger.UpdateCategory(c.Request().Context(), category)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, updated, "Category updated successfully")
	})
}

// DeleteCategory removes a category, uncategorising its transactions and dropping its budgets
// @Summary Delete category
// @Tags Categories
// @Param id path string true "Category ID (UUID)"
// @Success 204
// @Router /categories/{id} [delete]
func (h *LedgerHandler) DeleteCategory(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		if err := ledger.DeleteCategory(c.Request().Context(), id); err != nil {
			return h.sendLedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// ListBudgets returns the budgets of the current data source
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Budget}
// @Router /budgets [get]
func (h *LedgerHandler) ListBudgets(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		budgets, err := ledger.ListBudgets(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, budgets, len(budgets))
	})
}

// CreateBudget creates a spending cap for an expense category
// @Summary Create budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Budget details"
// @Success 201 {object} SuccessResponse{data=models.Budget}
// @Router /budgets [post]
func (h *LedgerHandler) CreateBudget(c echo.Context) error {
	var req dto.BudgetRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	budget, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		created, err := ledger.CreateBudget(c.Request().Context(), budget)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusCreated, created, "Budget created successfully")
	})
}

// UpdateBudget replaces a budget
// @Summary Update budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.BudgetRequest true "Budget details"
// @Success 200 {object} SuccessResponse{data=models.Budget}
// @Router /budgets/{id} [put]
func (h *LedgerHandler) UpdateBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req dto.BudgetRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	budget, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	budget.ID = id

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		updated, err := ledger.UpdateBudget(c.Request().Context(), budget)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, updated, "Budget updated successfully")
	})
}

// DeleteBudget removes a budget
// @Summary Delete budget
// @Tags Budgets
// @Param id path string true "Budget ID (UUID)"
// @Success 204
// @Router /budgets/{id} [delete]
func (h *LedgerHandler) DeleteBudget(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		if err := ledger.DeleteBudget(c.Request().Context(), id); err != nil {
			return h.sendLedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// GetBudgetProgress evaluates every budget over the period containing as_of
// @Summary Budget progress
// @Tags Budgets
// @Produce json
// @Param as_of query string false "Reference day, YYYY-MM-DD (default today)"
// @Success 200 {object} SuccessResponse{data=[]models.BudgetStatus}
// @Router /budgets/progress [get]
func (h *LedgerHandler) GetBudgetProgress(c echo.Context) error {
	var query dto.BudgetProgressQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	asOf, err := query.AsOfDate()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		statuses, err := ledger.GetBudgetProgress(c.Request().Context(), asOf)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, statuses, len(statuses))
	})
}

// ListGoals returns the financial goals of the current data source
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.FinancialGoal}
// @Router /goals [get]
func (h *LedgerHandler) ListGoals(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		goals, err := ledger.ListGoals(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, goals, len(goals))
	})
}

// CreateGoal creates a savings goal
// @Summary Create goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.GoalRequest true "Goal details"
// @Success 201 {object} SuccessResponse{data=models.FinancialGoal}
// @Router /goals [post]
func (h *LedgerHandler) CreateGoal(c echo.Context) error {
	var req dto.GoalRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	goal, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		created, err := ledger.CreateGoal(c.Request().Context(), goal)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusCreated, created, "Goal created successfully")
	})
}

// UpdateGoal replaces a goal, including its current amount
// @Summary Update goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.GoalRequest true "Goal details"
// @Success 200 {object} SuccessResponse{data=models.FinancialGoal}
// @Router /goals/{id} [put]
func (h *LedgerHandler) UpdateGoal(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req dto.GoalRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	goal, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	goal.ID = id

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		updated, err := ledger.UpdateGoal(c.Request().Context(), goal)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, updated, "Goal updated successfully")
	})
}

// DeleteGoal removes a goal
// @Summary Delete goal
// @Tags Goals
// @Param id path string true "Goal ID (UUID)"
// @Success 204
// @Router /goals/{id} [delete]
func (h *LedgerHandler) DeleteGoal(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		if err := ledger.DeleteGoal(c.Request().Context(), id); err != nil {
			return h.sendLedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// GetGoalProgress reports progress and days remaining for every goal
// @Summary Goal progress
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.GoalStatus}
// @Router /goals/progress [get]
func (h *LedgerHandler) GetGoalProgress(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		statuses, err := ledger.GetGoalProgress(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, statuses, len(statuses))
	})
}
