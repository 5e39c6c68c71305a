package api

import (
	"errors"
	"fmt"
)

// Error is a business failure reported by the API: the request reached the
// server but came back with success:false. Transport failures are ordinary
// wrapped errors, not *Error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return e.Message
}

// IsBusiness reports whether err (or anything it wraps) is an API-reported
// business failure rather than a transport problem.
func IsBusiness(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
