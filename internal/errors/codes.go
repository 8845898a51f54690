package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Owner error codes (OWNER_*)
const (
	OwnerNotFound  ErrorCode = "OWNER_001"
	OwnerInvalidID ErrorCode = "OWNER_002"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound        ErrorCode = "STATEMENT_001"
	StatementInvalidRange    ErrorCode = "STATEMENT_002"
	StatementNotDraft        ErrorCode = "STATEMENT_003"
	StatementUndeletable     ErrorCode = "STATEMENT_004"
	StatementGenerationError ErrorCode = "STATEMENT_005"
	StatementInvalidID       ErrorCode = "STATEMENT_006"
)

// Currency error codes (CURRENCY_*)
const (
	CurrencyRateUnavailable ErrorCode = "CURRENCY_001"
	CurrencyUnsupported     ErrorCode = "CURRENCY_002"
)

// Wallet and payout error codes (WALLET_*)
const (
	WalletNotFound      ErrorCode = "WALLET_001"
	WalletUpdateFailed  ErrorCode = "WALLET_002"
	PayoutInvalidAmount ErrorCode = "WALLET_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Owner errors
	OwnerNotFound:  "Owner not found",
	OwnerInvalidID: "Invalid owner ID format",

	// Statement errors
	StatementNotFound:        "Statement not found",
	StatementInvalidRange:    "Statement period start must not be after period end",
	StatementNotDraft:        "Statement is not in draft state; only draft statements can be finalized",
	StatementUndeletable:     "Finalized statements are immutable audit records and cannot be deleted",
	StatementGenerationError: "Statement generation failed; no draft was created",
	StatementInvalidID:       "Invalid statement ID format",

	// Currency errors
	CurrencyRateUnavailable: "No exchange rate available for the requested currency pair",
	CurrencyUnsupported:     "Unsupported currency code",

	// Wallet errors
	WalletNotFound:      "Owner wallet not found",
	WalletUpdateFailed:  "Owner wallet update failed",
	PayoutInvalidAmount: "Payout amount must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
