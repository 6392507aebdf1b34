package pkg

import "fmt"

// Error kinds exposed to HTTP callers as the "kind" field.
const (
	KindNotFound           = "NOT_FOUND"
	KindForbidden          = "FORBIDDEN"
	KindUnauthorized       = "UNAUTHORIZED"
	KindValidation         = "VALIDATION_ERROR"
	KindDocumentNotReady   = "DOCUMENT_NOT_READY"
	KindNotificationFailed = "NOTIFICATION_FAILED"
	KindTransactionFailed  = "TRANSACTION_FAILED"
	KindAlreadyAccepted    = "ALREADY_ACCEPTED"
	KindInternal           = "INTERNAL_ERROR"
)

// AppError carries a domain error kind together with the HTTP status it maps to.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body returned on failures.
type HTTPError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never exposes the wrapped cause; it is logged server side only.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Kind: e.Code, Message: e.Message}
}
