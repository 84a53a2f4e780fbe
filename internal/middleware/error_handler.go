package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPErrorHandler formats errors that escape handlers as standardized error
// responses, logs them and counts them by code
type HTTPErrorHandler struct {
	logger         *slog.Logger
	apiErrorsTotal *prometheus.CounterVec
}

// NewHTTPErrorHandler registers the api_errors_total counter on reg
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		logger: logger,
		apiErrorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle satisfies echo.HTTPErrorHandler
func (h *HTTPErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *apierrors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		errorResponse = apierrors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			apierrors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	} else if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
		errorResponse = apierrors.NewValidationError(fieldErrors, traceID)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse, _ = apierrors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	h.logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	h.apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		h.logger.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) apierrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return apierrors.ValidationGeneral
	case http.StatusUnauthorized:
		return apierrors.AuthNotAuthenticated
	case http.StatusForbidden:
		return apierrors.LedgerDemonstrationReadOnly
	case http.StatusNotFound:
		return apierrors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return apierrors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return apierrors.SystemInternalError
	case http.StatusServiceUnavailable:
		return apierrors.SystemServiceUnavailable
	default:
		return apierrors.SystemUnexpectedError
	}
}
