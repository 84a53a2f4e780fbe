package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ListAccounts returns the accounts of the current data source
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Account}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger store unavailable"
// @Router /accounts [get]
func (h *LedgerHandler) ListAccounts(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		accounts, err := ledger.ListAccounts(c.Request().Context())
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendList(c, accounts, len(accounts))
	})
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Not signed in"
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Account not found"
// @Router /accounts/{id} [get]
func (h *LedgerHandler) GetAccount(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		account, err := ledger.GetAccount(c.Request().Context(), id)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, account, "")
	})
}

// CreateAccount creates an account, recording any opening balance as a transaction
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} SuccessResponse{data=models.Account}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "LEDGER_001 - Demonstration data is read-only"
// @Failure 500 {object} errors.ErrorResponse "LEDGER_002 - Account saved with a stale balance"
// @Router /accounts [post]
func (h *LedgerHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	account, opening, err := req.ToModel()
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		created, err := ledger.CreateAccount(c.Request().Context(), account, opening)
		if err != nil {
			if created != nil {
				return h.sendLedgerError(c, err, storedRecord(created.ID)...)
			}
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusCreated, created, "Account created successfully")
	})
}

// UpdateAccount edits an account's descriptive fields. The balance is not editable.
// @Summary Update account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Account not found"
// @Router /accounts/{id} [put]
func (h *LedgerHandler) UpdateAccount(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req dto.UpdateAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		ctx := c.Request().Context()

		account, err := ledger.GetAccount(ctx, id)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		req.Apply(account)

		updated, err := ledger.UpdateAccount(ctx, account)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, updated, "Account updated successfully")
	})
}

// DeleteAccount removes an account together with its transactions
// @Summary Delete account
// @Tags Accounts
// @Param id path string true "Account ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "LEDGER_004 - Account not found"
// @Router /accounts/{id} [delete]
func (h *LedgerHandler) DeleteAccount(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		if err := ledger.DeleteAccount(c.Request().Context(), id); err != nil {
			return h.sendLedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// ReconcileAccount recomputes the stored balance from the account's transactions
// @Summary Reconcile account balance
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Failure 500 {object} errors.ErrorResponse "LEDGER_002 - Balance could not be written"
// @Router /accounts/{id}/reconcile [post]
func (h *LedgerHandler) ReconcileAccount(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		account, err := ledger.ReconcileAccount(c.Request().Context(), id)
		if err != nil {
			return h.sendLedgerError(c, err)
		}
		return sendData(c, http.StatusOK, account, "Balance reconciled")
	})
}
