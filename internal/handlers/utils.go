package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// storedRecord describes a record the ledger stored before failing
func storedRecord(id uuid.UUID) []string {
	if id == uuid.Nil {
		return nil
	}
	return []string{"record_id: " + id.String()}
}

// ErrNoLedger is returned when the session middleware did not run
var ErrNoLedger = fmt.Errorf("no ledger bound to request")

// modelValidationErrors are rejected by the models before anything is stored
var modelValidationErrors = []error{
	models.ErrInvalidAmount,
	models.ErrAccountIDRequired,
	models.ErrCategoryIDRequired,
	models.ErrInvalidCurrency,
	models.ErrInvalidAccountType,
	models.ErrAccountNameMissing,
	models.ErrInvalidTransactionType,
	models.ErrTransactionDateRequired,
	models.ErrInvalidCategoryType,
	models.ErrCategoryNameMissing,
	models.ErrInvalidBudgetPeriod,
	models.ErrBudgetDateRange,
	models.ErrGoalNameMissing,
	models.ErrGoalCompletedEarly,
	models.ErrGoalNegativeProgress,
	models.ErrInvalidWindow,
}

// LedgerHandler serves the /api/v1 ledger routes. The ledger service is
// per session and is read from the request, not held by the handler.
type LedgerHandler struct {
	logger         *slog.Logger
	demoCookieName string
}

// NewLedgerHandler creates a new ledger handler. demoCookieName is the
// durable cookie that seeds the mode of new sessions.
func NewLedgerHandler(logger *slog.Logger, demoCookieName string) *LedgerHandler {
	return &LedgerHandler{
		logger:         logger,
		demoCookieName: demoCookieName,
	}
}

// getLedger returns the ledger service bound by the session middleware
func getLedger(c echo.Context) (services.LedgerServiceInterface, error) {
	ledger, ok := c.Get(LedgerContextKey).(services.LedgerServiceInterface)
	if !ok || ledger == nil {
		return nil, ErrNoLedger
	}
	return ledger, nil
}

// withLedger resolves the session's ledger and hands it to fn
func (h *LedgerHandler) withLedger(c echo.Context, fn func(services.LedgerServiceInterface) error) error {
	ledger, err := getLedger(c)
	if err != nil {
		return SendSystemError(c, err)
	}
	return fn(ledger)
}

// bind decodes and validates a request body or query. It writes the 400
// response itself and reports false when the handler should stop.
func bind(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendValidationError(c, validation.FieldErrors(err), err.Error())
	}
	return true, nil
}

// parseID parses the :id path parameter, writing the 400 response on failure
func parseID(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid id"))
	}
	return id, true, nil
}

// sendLedgerError maps a ledger service error onto the API error codes.
// recordDetails describe a record that was stored despite the error; they are
// only reported alongside a stale balance.
func (h *LedgerHandler) sendLedgerError(c echo.Context, err error, recordDetails ...string) error {
	if stale := services.StaleBalances(err); len(stale) > 0 {
		details := make([]string, 0, len(stale)+len(recordDetails))
		for _, entry := range stale {
			h.logger.ErrorContext(c.Request().Context(), "Account balance left stale",
				"trace_id", getTraceID(c),
				"account_id", entry.AccountID.String(),
				"error", entry.Error(),
			)
			details = append(details, "account_id: "+entry.AccountID.String())
		}
		details = append(details, recordDetails...)
		return SendError(c, apierrors.LedgerStaleBalance, apierrors.WithDetails(details...))
	}

	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		return SendError(c, apierrors.AuthNotAuthenticated)
	case errors.Is(err, services.ErrDemonstrationWriteRejected):
		return SendError(c, apierrors.LedgerDemonstrationReadOnly)
	case errors.Is(err, services.ErrDivisionByZeroTarget):
		return SendError(c, apierrors.LedgerProgressUnavailable)
	case errors.Is(err, repositories.ErrStoreUnavailable):
		h.logger.WarnContext(c.Request().Context(), "Ledger store unavailable",
			"trace_id", getTraceID(c),
			"error", err.Error(),
		)
		return SendError(c, apierrors.SystemServiceUnavailable)
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.LedgerNotFound)
	case errors.Is(err, services.ErrConflict):
		return SendError(c, apierrors.LedgerConflict)
	case errors.Is(err, services.ErrCategoryTypeMismatch):
		return SendError(c, apierrors.LedgerCategoryTypeMismatch)
	case errors.Is(err, services.ErrInvalidTransfer):
		return SendError(c, apierrors.LedgerInvalidTransfer, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidMode):
		return SendError(c, apierrors.LedgerInvalidMode)
	case isModelValidationError(err):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	h.logger.ErrorContext(c.Request().Context(), "Ledger operation failed",
		"trace_id", getTraceID(c),
		"path", c.Path(),
		"error", err.Error(),
	)
	return SendSystemError(c, err)
}

func isModelValidationError(err error) bool {
	for _, target := range modelValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
