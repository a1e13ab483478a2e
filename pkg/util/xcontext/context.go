// Package xcontext provides context helpers.
package xcontext

import (
	"context"
	"fmt"
	"strings"
)

// NonBlockingCheck reports whether the context is already done without
// blocking. The optional msgs annotate the returned error with the operation
// that was about to start.
func NonBlockingCheck(ctx context.Context, msgs ...string) error {
	select {
	case <-ctx.Done():
		if len(msgs) == 0 {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", strings.Join(msgs, ":"), ctx.Err())
	default:
	}
	return nil
}
