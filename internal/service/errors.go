package service

import "errors"

// ErrPlanNotFound is returned when an identifier resolves to no plan.
var ErrPlanNotFound = errors.New("plan not found")

// BadRequestError marks failures caused by the caller: malformed input or a
// failed external lookup. Handlers map it to HTTP 400.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func badRequest(msg string) error {
	return &BadRequestError{Message: msg}
}
