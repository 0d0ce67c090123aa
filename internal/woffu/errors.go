package woffu

import (
	"errors"
	"fmt"
)

// ErrUserIDUnresolved is returned when neither the local token decode nor
// the API fallback produced a user id. Callers must treat it as fatal.
var ErrUserIDUnresolved = errors.New("could not resolve user id from token or API")

// APIError is a non-2xx response from the Woffu API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("woffu API error %d: %s", e.StatusCode, e.Body)
}
