package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// GetDashboard returns the overview: total balance, this month's totals,
// recent transactions, goal statuses and budget totals
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.DashboardSummary}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger store unavailable"
// @Router /dashboard [get]
func (h *LedgerHandler) GetDashboard(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		summary, err := ledger.GetDashboard(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, summary, "")
	})
}

// GetCategoryBreakdown totals income and expense per category over a date range
// @Summary Category breakdown
// @Tags Analytics
// @Produce json
// @Param start_date query string true "First day, YYYY-MM-DD"
// @Param end_date query string true "Last day, YYYY-MM-DD"
// @Success 200 {object} SuccessResponse{data=[]models.CategoryTotal}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date range"
// @Router /analytics/categories [get]
func (h *LedgerHandler) GetCategoryBreakdown(c echo.Context) error {
	var query dto.CategoryBreakdownQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	window, err := query.ToWindow()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		totals, err := ledger.GetCategoryBreakdown(c.Request().Context(), window)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, totals, len(totals))
	})
}
