package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers never build error bodies themselves:
//
//  1. SendError for client and business errors (4xx), and for mapped 5xx
//     conditions such as SYSTEM_003 or LEDGER_002.
//  2. SendSystemError for unexpected errors. The body only carries the trace ID.
//  3. sendLedgerError for anything returned by the ledger service; it picks
//     one of the two above.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// LedgerContextKey is the context key for the session's ledger service
	LedgerContextKey = "ledger"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	errorResponse := apierrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := apierrors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports field errors from the request validator, or a
// single detail when err is not a validator error.
func SendValidationError(c echo.Context, fieldErrors map[string]string, fallback string) error {
	if len(fieldErrors) == 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(fallback))
	}
	errorResponse := apierrors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

func sendData(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, SuccessResponse{Data: data, Message: message})
}

func sendList(c echo.Context, data interface{}, count int) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: dto.ListMeta{Count: count}})
}
