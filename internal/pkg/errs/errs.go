package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an identity of err so errors.Is(err, markErr)
// holds while the original cause stays matchable. Both errors end up in the
// standard Unwrap chain; cockroachdb's Mark only exposes the identity to its
// own Is, which callers here do not use.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return fmt.Errorf("%w: %w", markErr, err)
}
