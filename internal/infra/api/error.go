package api

import (
	"github.com/cockroachdb/errors"
)

// Error is a non-success HTTP response from the remote API. Message carries
// the server-supplied text verbatim; components surface it unchanged.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	return e.Message
}

// AsAPIError unwraps err to the underlying *Error, if any.
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
