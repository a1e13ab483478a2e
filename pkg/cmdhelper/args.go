// Package cmdhelper provides small helpers shared by the cli commands:
// argument guards, writer shortcuts and output prettifiers.
package cmdhelper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// GuardFunc checks a command invocation before its action runs.
type GuardFunc func(ctx context.Context, cmd *cli.Command) error

// BeforeFunc chains guards into a single *cli.Command Before hook.
func BeforeFunc(guards ...GuardFunc) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		for _, guard := range guards {
			if err := guard(ctx, cmd); err != nil {
				return ctx, err
			}
		}
		return ctx, nil
	}
}

// NoArgs rejects any positional args.
func NoArgs() GuardFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() > 0 {
			return fmt.Errorf("no args required for %q, received %q", cmd.FullName(), args.First())
		}
		return nil
	}
}

// ExactArgs requires exactly n positional args.
func ExactArgs(n int) GuardFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() != n {
			return fmt.Errorf("accepts %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}

// MinimumNArgs requires at least n positional args.
func MinimumNArgs(n int) GuardFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() < n {
			return fmt.Errorf("accepts at least %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}
