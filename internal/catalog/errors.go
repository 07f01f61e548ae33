package catalog

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the server reports a missing product id.
	ErrNotFound = errors.New("product not found")

	// ErrCredentials is returned on a failed login (exact-match miss).
	ErrCredentials = errors.New("invalid credentials")
)

// ValidationError reports the required fields missing from a product draft.
// It is raised client-side before any request is sent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("incomplete product: missing %s", strings.Join(e.Missing, ", "))
}

// IsValidation reports whether err is a draft validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
