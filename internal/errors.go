package internal

import "errors"

var (
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrMerchantNotConfigured = errors.New("merchant not configured")
	ErrDatabaseNotSet        = errors.New("database not set")
	ErrPaymentNotFound       = errors.New("payment not found")
)

// InvalidParameterError reports a payment attribute that failed validation.
type InvalidParameterError struct {
	Parameter string
}

func (e *InvalidParameterError) Error() string {
	return "Invalid parameter " + e.Parameter
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// MissingParameterError is an InvalidParameterError for a required attribute that was not set.
type MissingParameterError struct {
	InvalidParameterError
}

func NewMissingParameterError(parameter string) *MissingParameterError {
	return &MissingParameterError{InvalidParameterError{Parameter: parameter}}
}

func (e *MissingParameterError) Error() string {
	return "Missing parameter " + e.Parameter
}

func (e *MissingParameterError) Unwrap() error {
	return &e.InvalidParameterError
}
