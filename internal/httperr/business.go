package httperr

import "errors"

// Business error codes used across the API.
const (
	CodeInvalidDocument    = "invalid_document"
	CodeInvalidBooking     = "invalid_booking"
	CodeEmailTaken         = "email_already_registered"
	CodeInvalidCredentials = "invalid_credentials"
	CodeStorageFailure     = "storage_failure"
	CodeAssistUnavailable  = "assist_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
