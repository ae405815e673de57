package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthEmailAlreadyRegistered ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Grievance error codes (GRIEVANCE_*)
const (
	GrievanceNotFound         ErrorCode = "GRIEVANCE_001"
	GrievanceInvalidCategory  ErrorCode = "GRIEVANCE_002"
	GrievanceInvalidStatus    ErrorCode = "GRIEVANCE_003"
	GrievanceDescriptionShort ErrorCode = "GRIEVANCE_004"
	GrievanceAccessDenied     ErrorCode = "GRIEVANCE_005"
	GrievanceInvalidID        ErrorCode = "GRIEVANCE_006"
)

// Analytics/report error codes (REPORT_*)
const (
	ReportGenerationFailed ErrorCode = "REPORT_001"
	ReportInvalidField     ErrorCode = "REPORT_002"
	ReportExportFailed     ErrorCode = "REPORT_003"
	ReportSourceUnreadable ErrorCode = "REPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Authorization token is invalid",
	AuthInsufficientPermission: "Insufficient permissions for this operation",
	AuthAccountLocked:          "Account is locked due to too many failed login attempts",
	AuthEmailAlreadyRegistered: "An account with this email already exists",

	// Validation errors
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationInvalidEmail:  "Email address is invalid",
	ValidationInvalidDate:   "Date value is invalid",

	// Grievance errors
	GrievanceNotFound:         "Grievance not found",
	GrievanceInvalidCategory:  "Grievance category is not recognized",
	GrievanceInvalidStatus:    "Grievance status is not recognized",
	GrievanceDescriptionShort: "Grievance description is too short",
	GrievanceAccessDenied:     "You do not have access to this grievance",
	GrievanceInvalidID:        "Grievance ID is invalid",

	// Analytics/report errors
	ReportGenerationFailed: "Failed to generate analytics report",
	ReportInvalidField:     "Unknown aggregation field",
	ReportExportFailed:     "Failed to export grievance data",
	ReportSourceUnreadable: "Failed to read grievance records source",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemConfigurationError: "Service is misconfigured",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unknown error occurred"
}
