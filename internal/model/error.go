package model

// Standard error codes used for logging and diagnostics.
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeHeladoNotFound  = "HELADO_NOT_FOUND"
	ErrCodeStoreFailure    = "STORE_FAILURE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
	ErrCodeRouteNotMatched = "ROUTE_NOT_MATCHED"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrHeladoNotFound = NewDomainError(ErrCodeHeladoNotFound, "helado not found")
	ErrInvalidID      = NewDomainError(ErrCodeInvalidID, "helado ID must be an integer")
	ErrInvalidBody    = NewDomainError(ErrCodeInvalidJSON, "request body is not a valid helado")
	ErrMissingField   = NewDomainError(ErrCodeMissingField, "sabor and precio are required")
)
