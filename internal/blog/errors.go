package blog

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidInput marks caller mistakes such as a blank id or a
// non-positive limit.
var ErrInvalidInput = errors.New("invalid input")

// FetchError reports a transport failure or a non-success status from the
// remote post source.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	target := e.URL
	if target == "" {
		target = "posts"
	}
	switch {
	case e.Err != nil && e.StatusCode > 0:
		return fmt.Sprintf("fetch %s: status %d: %v", target, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", target, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("fetch %s: unexpected status %d %s", target, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("fetch %s: failed", target)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFoundError reports that the remote source has no post with ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("blog post %q not found", e.ID)
}

// DecodeError reports a response body that does not match the post shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
