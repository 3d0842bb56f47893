package worldbank

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("world bank api returned status %d", e.StatusCode)
}

// AsStatusError unwraps err into a StatusError if one is present.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
