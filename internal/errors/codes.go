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
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
	ValidationInvalidRank   ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInactive      ErrorCode = "USER_003"
	UserInvalidID     ErrorCode = "USER_004"
	UserNoResults     ErrorCode = "USER_005"
)

// Role and permission error codes (ROLE_*, PERMISSION_*)
const (
	RoleNotFound      ErrorCode = "ROLE_001"
	RoleAlreadyExists ErrorCode = "ROLE_002"
	RoleInvalidID     ErrorCode = "ROLE_003"
	RoleAssigned      ErrorCode = "ROLE_004"

	PermissionNotFound      ErrorCode = "PERMISSION_001"
	PermissionAlreadyExists ErrorCode = "PERMISSION_002"
	PermissionInvalidID     ErrorCode = "PERMISSION_003"
)

// College error codes (COLLEGE_*)
const (
	CollegeNotFound    ErrorCode = "COLLEGE_001"
	CollegeInvalidCode ErrorCode = "COLLEGE_002"
	CollegeNoResults   ErrorCode = "COLLEGE_003"
)

// Suggestion error codes (SUGGESTION_*)
const (
	SuggestionNoResults      ErrorCode = "SUGGESTION_001"
	SuggestionInvalidProfile ErrorCode = "SUGGESTION_002"
	SuggestionInvalidBranch  ErrorCode = "SUGGESTION_003"
	SuggestionInvalidRegion  ErrorCode = "SUGGESTION_004"
)

// Ingestion error codes (INGEST_*)
const (
	IngestFileNotFound ErrorCode = "INGEST_001"
	IngestParseFailed  ErrorCode = "INGEST_002"
	IngestNoRecords    ErrorCode = "INGEST_003"
	IngestInProgress   ErrorCode = "INGEST_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",
	ValidationInvalidRank:   "Exam rank must be a positive number",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInactive:      "User account is inactive or suspended",
	UserInvalidID:     "Invalid user ID format",
	UserNoResults:     "User search returned no results",

	// Role and permission errors
	RoleNotFound:      "Role not found",
	RoleAlreadyExists: "A role with this name already exists",
	RoleInvalidID:     "Invalid role ID format",
	RoleAssigned:      "Role is still assigned to one or more users",

	PermissionNotFound:      "Permission not found",
	PermissionAlreadyExists: "A permission with this name already exists",
	PermissionInvalidID:     "Invalid permission ID format",

	// College errors
	CollegeNotFound:    "College not found",
	CollegeInvalidCode: "Invalid college code",
	CollegeNoResults:   "College search returned no results",

	// Suggestion errors
	SuggestionNoResults:      "No colleges match the given profile",
	SuggestionInvalidProfile: "Student profile is incomplete or invalid",
	SuggestionInvalidBranch:  "Unknown branch name or code",
	SuggestionInvalidRegion:  "Unknown region",

	// Ingestion errors
	IngestFileNotFound: "Cutoff report file not found",
	IngestParseFailed:  "Failed to parse cutoff report",
	IngestNoRecords:    "Cutoff report contained no usable records",
	IngestInProgress:   "An ingestion run is already in progress",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
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
