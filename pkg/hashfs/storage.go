package hashfs

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/wuxler/ruafs/pkg/hashfs Storage

// Storage is the client interface a content-addressable storage engine
// implements. The methods enumerate every operation web applications are
// expected to call; anything engine-specific stays behind the implementation.
type Storage interface {
	// Put stores the content read from r and returns the address it was
	// placed at. Storing content that already exists succeeds and returns
	// the existing address with IsDuplicate set.
	Put(ctx context.Context, r io.Reader, opts ...PutOption) (Address, error)

	// Get resolves an id or relative path to the address of stored content.
	// Returns errdefs.ErrNotFound when the content does not exist.
	Get(ctx context.Context, idOrPath string) (Address, error)

	// Open returns a reader over stored content. The caller owns the reader
	// and must close it. Returns errdefs.ErrNotFound when the content does
	// not exist.
	Open(ctx context.Context, idOrPath string) (io.ReadCloser, error)

	// Delete removes stored content. Deleting content that is already
	// absent is not an error.
	Delete(ctx context.Context, idOrPath string) error
}

// StorageOpener constructs a Storage from a validated config. Implementations
// bind a concrete engine, a local hash filesystem, an object store gateway or
// a test double, into the module.
type StorageOpener func(ctx context.Context, cfg Config) (Storage, error)

// PutOption customizes a single Put call.
type PutOption func(*PutOptions)

// PutOptions collects the options for Put.
type PutOptions struct {
	// Extension is recorded with the stored content and appended to its
	// sharded path.
	Extension string
}

// MakePutOptions returns PutOptions with all options applied.
func MakePutOptions(opts ...PutOption) *PutOptions {
	o := &PutOptions{}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithExtension sets the file extension recorded with the stored content.
func WithExtension(ext string) PutOption {
	return func(o *PutOptions) {
		o.Extension = ext
	}
}
