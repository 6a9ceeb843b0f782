package quotes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the table holds no records.
	ErrNotFound = errors.New("no quotes available")

	// ErrMalformedResponse means the model answered without the expected text.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrService matches every *ServiceError.
	ErrService = errors.New("service error")
)

// ServiceError is a failed call to an external service.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() []error {
	return []error{ErrService, e.Err}
}

func serviceError(service, op string, err error) error {
	return &ServiceError{Service: service, Op: op, Err: err}
}
