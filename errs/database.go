package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDatabaseQuery = errors.New("database query failed")
	ErrActionFailed  = errors.New("action failed")
)

// NewActionFailed wraps any storage or decode failure behind the API's
// uniform contract: HTTP 500 with the static "<action> failed" message.
// The cause is carried for server-side logging and is never sent to the
// client. Note this deliberately covers not-found rows too: deleting a
// missing id is a 500 here, not a 404.
func NewActionFailed(action string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s failed", action),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsActionFailed(err error) bool {
	var apiErr *ApiErr
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusInternalServerError
}
