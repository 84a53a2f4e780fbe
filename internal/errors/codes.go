package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthNotAuthenticated   ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerDemonstrationReadOnly ErrorCode = "LEDGER_001"
	LedgerStaleBalance          ErrorCode = "LEDGER_002"
	LedgerProgressUnavailable   ErrorCode = "LEDGER_003"
	LedgerNotFound              ErrorCode = "LEDGER_004"
	LedgerCategoryTypeMismatch  ErrorCode = "LEDGER_005"
	LedgerInvalidTransfer       ErrorCode = "LEDGER_006"
	LedgerInvalidMode           ErrorCode = "LEDGER_007"
	LedgerConflict              ErrorCode = "LEDGER_008"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
	SystemUnexpectedError    ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthNotAuthenticated:   "Sign in to read or change your own records",
	AuthInvalidToken:       "Authorization token is invalid or has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Amounts must be non-negative with at most two decimal places",

	// Ledger errors
	LedgerDemonstrationReadOnly: "Demonstration data is read-only. Switch to your own data to make changes",
	LedgerStaleBalance:          "The change was saved but an account balance could not be updated",
	LedgerProgressUnavailable:   "Progress cannot be computed for a zero target",
	LedgerNotFound:              "Record not found",
	LedgerCategoryTypeMismatch:  "Category type does not match the transaction type",
	LedgerInvalidTransfer:       "Invalid transfer",
	LedgerInvalidMode:           "Mode must be persisted or demonstration",
	LedgerConflict:              "The change conflicts with the current ledger, a referenced record may have been removed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
