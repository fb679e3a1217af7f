package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx reply from the intelligence backend. The status and
// path are enough for the aggregator to decide between fallback and
// propagation; the body is logged, not carried.
type Error struct {
	Status int
	Path   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream %s: status %d", e.Path, e.Status)
}

// IsAuth reports whether the reply was an authentication failure.
func (e *Error) IsAuth() bool {
	return e.Status == http.StatusUnauthorized
}

// IsAuthError reports whether err is an upstream 401.
func IsAuthError(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.IsAuth()
}
