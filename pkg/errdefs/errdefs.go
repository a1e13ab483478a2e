// Package errdefs defines the error categories shared across the module and
// helpers to attach context to them.
//
// Callers classify failures with errors.Is against the sentinel errors
// declared here, no matter how many layers wrapped them in between.
package errdefs

import (
	"errors"
	"fmt"
)

// Newf joins the base error with a formatted error built by fmt.Errorf.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE joins the base error with err. When err is nil or already carries
// the base, it is returned unchanged.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}
