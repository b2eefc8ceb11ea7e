package models

// Error codes exposed on the wire.
const (
	CodeNotSignedIn        = "NOT_SIGNEDIN"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeResourceExists     = "RESOURCE_EXISTS"
	CodeNotAllowedAccess   = "NOT_ALLOWED_ACCESS"
)

// APIError is one entry of the errors array in a failure response.
type APIError struct {
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorUnauthorized is returned when the actor credential is missing or
// does not resolve to an existing user. Maps to 401 NOT_SIGNEDIN.
type ErrorUnauthorized struct{}

func (e ErrorUnauthorized) Error() string {
	return "You need to sign in to proceed."
}

// ErrorNotFound is returned when a named resource does not exist.
// Maps to 400 RESOURCE_NOT_FOUND.
type ErrorNotFound struct {
	Param   string
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorConflict is returned when a resource already exists.
// Maps to 400 RESOURCE_EXISTS.
type ErrorConflict struct {
	Param   string
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorForbidden is returned when the actor lacks privilege for the
// requested action. Maps to 400 NOT_ALLOWED_ACCESS.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

// ErrorValidation carries one or more field-level input errors.
type ErrorValidation struct {
	Errors []APIError
}

func (e ErrorValidation) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return "invalid input"
}
