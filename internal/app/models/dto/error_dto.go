package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"

	ErrorCodeForbidden        ErrorCode = "AUTHZ_001"
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_002"

	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail carries the machine-readable part of a failure response.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope: {success:false, message, error?}.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewErrorResponse creates a failure envelope with a code and message.
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Error:   &ErrorDetail{Code: code},
	}
}

// WithDetails attaches diagnostic details to the failure envelope.
func (r ErrorResponse) WithDetails(details string) ErrorResponse {
	if r.Error == nil {
		r.Error = &ErrorDetail{}
	}
	r.Error.Details = details
	return r
}
