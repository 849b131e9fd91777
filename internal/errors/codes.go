package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInvalidToken           ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidPatch  ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountAlreadyExists ErrorCode = "ACCOUNT_002"
	AccountInvalidType   ErrorCode = "ACCOUNT_003"
	AccountInvalidID     ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound       ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount  ErrorCode = "TRANSACTION_002"
	TransactionInvalidType    ErrorCode = "TRANSACTION_003"
	TransactionUnknownAccount ErrorCode = "TRANSACTION_004"
	TransactionInvalidID      ErrorCode = "TRANSACTION_005"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidAmount ErrorCode = "GOAL_002"
	GoalInvalidStatus ErrorCode = "GOAL_003"
	GoalInvalidID     ErrorCode = "GOAL_004"
)

// Dashboard error codes (DASHBOARD_*)
const (
	DashboardUnknownCollection ErrorCode = "DASHBOARD_001"
	DashboardNotLoaded         ErrorCode = "DASHBOARD_002"
	DashboardMissingOwner      ErrorCode = "DASHBOARD_003"
	DashboardOwnerHasData      ErrorCode = "DASHBOARD_004"
	DashboardStoreUnavailable  ErrorCode = "DASHBOARD_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInvalidToken:           "Authorization token could not be verified",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidPatch:  "Patch contains unknown or read-only fields",

	AccountNotFound:      "Account not found",
	AccountAlreadyExists: "An account with this id already exists",
	AccountInvalidType:   "Invalid account type",
	AccountInvalidID:     "Invalid account ID format",

	TransactionNotFound:       "Transaction not found",
	TransactionInvalidAmount:  "Invalid transaction amount",
	TransactionInvalidType:    "Invalid transaction type",
	TransactionUnknownAccount: "Transaction references an unknown account",
	TransactionInvalidID:      "Invalid transaction ID format",

	GoalNotFound:      "Goal not found",
	GoalInvalidAmount: "Invalid goal amount",
	GoalInvalidStatus: "Invalid goal status",
	GoalInvalidID:     "Invalid goal ID format",

	DashboardUnknownCollection: "Unknown dashboard collection",
	DashboardNotLoaded:         "Dashboard data has not been loaded",
	DashboardMissingOwner:      "No signed-in user for this dashboard",
	DashboardOwnerHasData:      "Demo data can only be seeded for an empty dashboard",
	DashboardStoreUnavailable:  "Dashboard store is temporarily unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "No such endpoint",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
