package httperr

import "errors"

// Kind classifies a business error so the HTTP boundary can pick a status
// code without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindCapacity
	KindAuth
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrCapacity(code, message string) error {
	return BusinessError{Kind: KindCapacity, Code: code, Message: message}
}

func ErrAuth(code, message string) error {
	return BusinessError{Kind: KindAuth, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
