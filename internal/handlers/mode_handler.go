package handlers

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// demoCookieMaxAge keeps the mode choice for a year
const demoCookieMaxAge = 365 * 24 * 60 * 60

// GetMode returns the session's current data mode
// @Summary Get data mode
// @Tags Mode
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ModeResponse}
// @Router /mode [get]
func (h *LedgerHandler) GetMode(c echo.Context) error {
	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		return sendData(c, http.StatusOK, dto.ModeResponse{Mode: string(ledger.Mode())}, "")
	})
}

// SwitchMode moves the session between persisted and demonstration data.
// Switching to the current mode is a no-op and reports changed=false.
// The demo mode cookie is rewritten so new sessions start in this mode.
// @Summary Switch data mode
// @Tags Mode
// @Accept json
// @Produce json
// @Param request body dto.SwitchModeRequest true "Target mode"
// @Success 200 {object} SuccessResponse{data=dto.ModeResponse}
// @Failure 400 {object} errors.ErrorResponse "LEDGER_007 - Unknown mode"
// @Router /mode [put]
func (h *LedgerHandler) SwitchMode(c echo.Context) error {
	var req dto.SwitchModeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	mode, err := services.ParseMode(req.Mode)
	if err != nil {
		return SendError(c, apierrors.LedgerInvalidMode)
	}

	return h.withLedger(c, func(ledger services.LedgerServiceInterface) error {
		changed := ledger.SwitchMode(c.Request().Context(), mode)
		current := ledger.Mode()
		c.SetCookie(&http.Cookie{
			Name:     h.demoCookieName,
			Value:    strconv.FormatBool(current == services.ModeDemonstration),
			Path:     "/",
			MaxAge:   demoCookieMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
		return sendData(c, http.StatusOK, dto.ModeResponse{Mode: string(current), Changed: changed}, "")
	})
}
