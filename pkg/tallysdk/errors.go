package tallysdk

import (
	"errors"
	"fmt"
)

// APIError is returned when the service answers with a non-2xx status. The
// Detail field carries the server's human-readable message verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tally: status %d: %s", e.Status, e.Detail)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
