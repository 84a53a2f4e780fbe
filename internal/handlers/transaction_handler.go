package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ListTransactions returns transactions matching the query filters, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param account_id query string false "Account touched by the transaction (either side of a transfer)"
// @Param category_id query string false "Category ID"
// @Param type query string false "income, expense or transfer"
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param search query string false "Matches description, merchant, location or account name"
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {object} SuccessResponse{data=[]models.Transaction}
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	filters, err := query.ToFilters()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		transactions, err := ledger.ListTransactions(c.Request().Context(), filters)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, transactions, len(transactions))
	})
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.Transaction}
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		transaction, err := ledger.GetTransaction(c.Request().Context(), id)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, transaction, "")
	})
}

// CreateTransaction records a transaction and reconciles every account it touches
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=models.Transaction}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "LEDGER_001 - Demonstration data is read-only"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_005 - Category type mismatch"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_006 - Invalid transfer"
// @Failure 500 {object} errors.ErrorResponse "LEDGER_002 - Transaction saved, balance stale"
// @Router /transactions [post]
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	transaction, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		created, err := ledger.CreateTransaction(c.Request().Context(), transaction)
		if err != nil {
			if created != nil {
				return h.sendLedgerError(c, err, storedRecord(created.ID)...)
			}
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusCreated, created, "Transaction created successfully")
	})
}

// UpdateTransaction replaces a transaction. Both the old and new accounts are reconciled.
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} SuccessResponse{data=models.Transaction}
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *LedgerHandler) UpdateTransaction(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req dto.TransactionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	transaction, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	transaction.ID = id

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		updated, err := ledger.UpdateTransaction(c.Request().Context(), transaction)
		if err != nil {
			if updated != nil {
				return h.sendLedgerError(c, err, storedRecord(updated.ID)...)
			}
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, updated, "Transaction updated successfully")
	})
}

// DeleteTransaction removes a transaction and restores the affected balances
// @Summary Delete transaction
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		if err := ledger.DeleteTransaction(c.Request().Context(), id); err != nil {
			return h.sendLedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
