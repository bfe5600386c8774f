package apperr

// FieldError is a user-correctable problem with a single input field.
type FieldError struct {
	Field   string
	Message string
}

// Error is an application-layer error that can be mapped to an HTTP response.
// Fields is non-empty only for validation failures.
type Error struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Validation builds the standard 400 validation error from field failures.
func Validation(fields ...FieldError) *Error {
	return &Error{
		Status:  400,
		Code:    "VALIDATION_ERROR",
		Message: "validation failed",
		Fields:  fields,
	}
}
