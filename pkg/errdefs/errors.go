package errdefs

import "errors"

var (
	// ErrNotFound signals that the requested content or resource doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter signals that the supplied input or configuration is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyExists signals that the resource is already present and the
	// action would overwrite it.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnavailable signals that the requested subsystem has not been
	// initialized or is currently not usable.
	ErrUnavailable = errors.New("unavailable")

	// ErrUnsupported indicates that the requested action is not supported.
	ErrUnsupported = errors.New("unsupported")

	// ErrSystem signals an internal error, such as an unexpected failure
	// from the operating system.
	ErrSystem = errors.New("system error")

	// ErrCanceled signals that the action was canceled by the caller.
	ErrCanceled = errors.New("canceled")

	// ErrUnknown signals a failure whose kind could not be determined.
	ErrUnknown = errors.New("unknown error")
)
